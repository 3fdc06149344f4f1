package healthstats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanpet/ivanpetcom/internal/healthstats"
)

func TestBuildAnalyticsReport_NoData(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	report, err := healthstats.BuildAnalyticsReport(nil, 30, now)
	assert.ErrorIs(t, err, healthstats.ErrNoData)
	assert.Nil(t, report)
}

func TestBuildAnalyticsReport_FullPayload(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	now := startTime.AddDate(0, 0, 10)

	measurements := dailySamples(100, -0.4, 10, 1, startTime)

	report, err := healthstats.BuildAnalyticsReport(measurements, 30, now)
	require.NoError(t, err)

	assert.Equal(t, 30, report.PeriodDays)
	assert.Equal(t, 10, report.Metrics.DataPoints)
	assert.Equal(t, 100.0, report.Metrics.StartingWeight)
	assert.InDelta(t, 96.4, report.Metrics.CurrentWeight, 0.0001)
	assert.InDelta(t, 96.4, report.Metrics.MinWeight, 0.0001)
	assert.Equal(t, 100.0, report.Metrics.MaxWeight)
	assert.InDelta(t, 98.2, report.Metrics.AverageWeight, 0.0001)
	assert.InDelta(t, -3.6, report.Metrics.TotalChange, 0.0001)

	assert.Equal(t, healthstats.TrendLosing, report.Trend)
	assert.Len(t, report.WeeklyAverages, 4)
	assert.Equal(t, 100.0, report.ConsistencyScore)
	assert.Equal(t, now, report.GeneratedAt)

	require.NotNil(t, report.Projections)
	assert.Equal(t, healthstats.ProjectionAlgorithm, report.Projections.Algorithm)
	assert.Len(t, report.Projections.Projections, healthstats.DefaultHorizonDays)
}

func TestBuildAnalyticsReport_TooFewSamplesForProjections(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	now := startTime.AddDate(0, 0, 3)

	measurements := dailySamples(100, -0.4, 3, 1, startTime)

	report, err := healthstats.BuildAnalyticsReport(measurements, 30, now)
	require.Error(t, err)
	assert.Nil(t, report)

	var insufficientErr *healthstats.InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, healthstats.MinProjectionSamples, insufficientErr.Required)
	assert.Equal(t, 3, insufficientErr.Actual)
}

func TestCompareReports(t *testing.T) {
	period1 := &healthstats.AnalyticsReport{
		Metrics:          healthstats.SummaryMetrics{CurrentWeight: 90},
		Trend:            healthstats.TrendLosing,
		ConsistencyScore: 60,
	}
	period2 := &healthstats.AnalyticsReport{
		Metrics:          healthstats.SummaryMetrics{CurrentWeight: 87},
		Trend:            healthstats.TrendLosing,
		ConsistencyScore: 80,
	}

	comparison := healthstats.CompareReports(period1, period2)
	assert.InDelta(t, -3.0, comparison.WeightChange, 0.0001)
	assert.InDelta(t, -3.3333, comparison.WeightChangePercentage, 0.0001)
	assert.True(t, comparison.Improvement)
	assert.True(t, comparison.TrendsMatch)
	assert.True(t, comparison.ConsistencyImprovement)

	// weight gained between the periods
	period2.Metrics.CurrentWeight = 92
	period2.Trend = healthstats.TrendGaining
	period2.ConsistencyScore = 40

	comparison = healthstats.CompareReports(period1, period2)
	assert.InDelta(t, 2.0, comparison.WeightChange, 0.0001)
	assert.False(t, comparison.Improvement)
	assert.False(t, comparison.TrendsMatch)
	assert.False(t, comparison.ConsistencyImprovement)
}

func TestNormalizeToKg(t *testing.T) {
	kg, err := healthstats.NormalizeToKg(100, "kg")
	require.NoError(t, err)
	assert.Equal(t, 100.0, kg)

	kg, err = healthstats.NormalizeToKg(220.462, "lb")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, kg, 0.001)

	_, err = healthstats.NormalizeToKg(-5, "kg")
	require.Error(t, err)
	var validationErr *healthstats.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "weight", validationErr.Field)

	_, err = healthstats.NormalizeToKg(80, "stone")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "unit", validationErr.Field)
}
