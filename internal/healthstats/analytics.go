package healthstats

import (
	"time"
)

type SummaryMetrics struct {
	DataPoints     int     `json:"dataPoints"`
	CurrentWeight  float64 `json:"currentWeight"`
	StartingWeight float64 `json:"startingWeight"`
	AverageWeight  float64 `json:"averageWeight"`
	MinWeight      float64 `json:"minWeight"`
	MaxWeight      float64 `json:"maxWeight"`
	TotalChange    float64 `json:"totalChange"`
}

type AnalyticsReport struct {
	PeriodDays       int               `json:"periodDays"`
	Metrics          SummaryMetrics    `json:"metrics"`
	Trend            string            `json:"trend"`
	WeeklyAverages   []float64         `json:"weeklyAverages"`
	ConsistencyScore float64           `json:"consistencyScore"`
	Projections      *ProjectionResult `json:"projections"`
	GeneratedAt      time.Time         `json:"generatedAt"`
}

type PeriodComparison struct {
	WeightChange           float64 `json:"weightChange"`
	WeightChangePercentage float64 `json:"weightChangePercentage"`
	Improvement            bool    `json:"improvement"`
	TrendsMatch            bool    `json:"trendsMatch"`
	ConsistencyImprovement bool    `json:"consistencyImprovement"`
}

type ComparativeReport struct {
	Period1    *AnalyticsReport `json:"period1"`
	Period2    *AnalyticsReport `json:"period2"`
	Comparison PeriodComparison `json:"comparison"`
}

// BuildAnalyticsReport merges summary metrics, trend analysis and a
// 30-day projection into one dashboard payload. There is no partial
// payload, a period with fewer samples than the projection minimum
// fails the whole report.
func BuildAnalyticsReport(
	measurements []WeightMeasurement,
	periodDays int,
	now time.Time,
) (*AnalyticsReport, error) {
	if len(measurements) == 0 {
		return nil, ErrNoData
	}

	first := measurements[0]
	last := measurements[len(measurements)-1]

	sum, minWeight, maxWeight := 0.0, first.WeightKg, first.WeightKg
	for _, m := range measurements {
		sum += m.WeightKg
		if m.WeightKg < minWeight {
			minWeight = m.WeightKg
		}
		if m.WeightKg > maxWeight {
			maxWeight = m.WeightKg
		}
	}

	report := &AnalyticsReport{
		PeriodDays: periodDays,
		Metrics: SummaryMetrics{
			DataPoints:     len(measurements),
			CurrentWeight:  last.WeightKg,
			StartingWeight: first.WeightKg,
			AverageWeight:  sum / float64(len(measurements)),
			MinWeight:      minWeight,
			MaxWeight:      maxWeight,
			TotalChange:    last.WeightKg - first.WeightKg,
		},
		Trend:            ClassifyTrend(measurements),
		WeeklyAverages:   MovingAverage(measurements, 7),
		ConsistencyScore: ConsistencyScore(measurements),
		GeneratedAt:      now.UTC(),
	}

	projections, err := ComputeProjections(measurements, DefaultHorizonDays, now)
	if err != nil {
		return nil, err
	}
	report.Projections = projections

	return report, nil
}

// CompareReports diffs two period reports, period2 being the more
// recent window.
func CompareReports(period1, period2 *AnalyticsReport) PeriodComparison {
	weightChange := period2.Metrics.CurrentWeight - period1.Metrics.CurrentWeight
	weightChangePercentage := 0.0
	if period1.Metrics.CurrentWeight != 0 {
		weightChangePercentage = weightChange / period1.Metrics.CurrentWeight * 100
	}
	return PeriodComparison{
		WeightChange:           weightChange,
		WeightChangePercentage: weightChangePercentage,
		Improvement:            weightChange < 0,
		TrendsMatch:            period1.Trend == period2.Trend,
		ConsistencyImprovement: period2.ConsistencyScore > period1.ConsistencyScore,
	}
}
