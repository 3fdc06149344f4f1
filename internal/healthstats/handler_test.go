package healthstats_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanpet/ivanpetcom/internal/healthstats"
)

func TestHandler_HandleAddMeasurement(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	addReq := healthstats.AddMeasurementRequest{
		Weight:    92.5,
		Unit:      "kg",
		Timestamp: now,
	}
	reqJson, err := json.Marshal(addReq)
	require.NoError(t, err)

	serviceMock.EXPECT().
		AddMeasurement(gomock.Any(), addReq).
		Return(&healthstats.WeightMeasurement{
			ID:        1,
			WeightKg:  92.5,
			Timestamp: now,
			Source:    healthstats.DefaultSource,
		}, nil)

	req, err := http.NewRequest("POST", "/health/weight", bytes.NewReader(reqJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleAddMeasurement(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var added healthstats.WeightMeasurement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, 1, added.ID)
	assert.Equal(t, 92.5, added.WeightKg)
}

func TestHandler_HandleAddMeasurement_InvalidContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	req, err := http.NewRequest("POST", "/health/weight", bytes.NewReader([]byte("weight=92")))
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleAddMeasurement(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleAddMeasurement_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		AddMeasurement(gomock.Any(), gomock.Any()).
		Return(nil, &healthstats.ValidationError{Field: "unit", Reason: "missing"})

	reqJson, err := json.Marshal(healthstats.AddMeasurementRequest{Weight: 92.5})
	require.NoError(t, err)
	req, err := http.NewRequest("POST", "/health/weight", bytes.NewReader(reqJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleAddMeasurement(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "validation_error", errResp["error"])
	assert.Equal(t, "invalid unit: missing", errResp["message"])
}

func TestHandler_HandleGetProjections(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		GetProjections(gomock.Any(), 14).
		Return(&healthstats.ProjectionResult{
			CurrentWeight: 88,
			DailyRate:     0.2857,
			Confidence:    0.84,
			Algorithm:     healthstats.ProjectionAlgorithm,
		}, nil)

	req, err := http.NewRequest("GET", "/health/projections?horizonDays=14", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleGetProjections(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result healthstats.ProjectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 88.0, result.CurrentWeight)
	assert.Equal(t, healthstats.ProjectionAlgorithm, result.Algorithm)
}

func TestHandler_HandleGetProjections_InsufficientData(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		GetProjections(gomock.Any(), healthstats.DefaultHorizonDays).
		Return(nil, &healthstats.InsufficientDataError{Required: 7, Actual: 3})

	req, err := http.NewRequest("GET", "/health/projections", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleGetProjections(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "insufficient_data", errResp["error"])
}

func TestHandler_HandleGetTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		GetTrends(gomock.Any(), healthstats.DefaultTrendPeriodDays).
		Return(&healthstats.TrendAnalysis{
			PeriodDays:   30,
			OverallTrend: healthstats.TrendLosing,
			DataPoints:   10,
		}, nil)

	// a bogus query param falls back to the default period
	req, err := http.NewRequest("GET", "/health/trends?periodDays=abc", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleGetTrends(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var analysis healthstats.TrendAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, healthstats.TrendLosing, analysis.OverallTrend)
}

func TestHandler_HandleGoalProgress_NoActiveGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		GetGoalProgress(gomock.Any()).
		Return(nil, healthstats.ErrNoActiveGoal)

	req, err := http.NewRequest("GET", "/health/goal/progress", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleGoalProgress(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "no_active_goal", errResp["error"])
}

func TestHandler_HandleSetGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	startDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	setReq := healthstats.SetGoalRequest{
		StartWeight:  100,
		TargetWeight: 85,
		StartDate:    startDate,
	}
	reqJson, err := json.Marshal(setReq)
	require.NoError(t, err)

	serviceMock.EXPECT().
		SetGoal(gomock.Any(), setReq).
		Return(&healthstats.WeightGoal{
			ID:             3,
			StartWeightKg:  100,
			TargetWeightKg: 85,
			StartDate:      startDate,
			IsActive:       true,
		}, nil)

	req, err := http.NewRequest("POST", "/health/goal", bytes.NewReader(reqJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleSetGoal(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var goal healthstats.WeightGoal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goal))
	assert.Equal(t, 3, goal.ID)
	assert.True(t, goal.IsActive)
}

func TestHandler_HandleDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		Dashboard(gomock.Any(), 7).
		Return(&healthstats.AnalyticsReport{
			PeriodDays: 7,
			Metrics:    healthstats.SummaryMetrics{DataPoints: 7, CurrentWeight: 90},
			Trend:      healthstats.TrendStable,
		}, nil)

	req, err := http.NewRequest("GET", "/health/dashboard?periodDays=7", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleDashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report healthstats.AnalyticsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 7, report.PeriodDays)
	assert.Equal(t, healthstats.TrendStable, report.Trend)
}

func TestHandler_HandleCompare(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockstatsService(ctrl)
	h := healthstats.NewHandler(serviceMock)

	serviceMock.EXPECT().
		ComparePeriods(gomock.Any(), 30, 60).
		Return(&healthstats.ComparativeReport{
			Period1: &healthstats.AnalyticsReport{PeriodDays: 30},
			Period2: &healthstats.AnalyticsReport{PeriodDays: 60},
			Comparison: healthstats.PeriodComparison{
				WeightChange: -2,
				Improvement:  true,
				TrendsMatch:  true,
			},
		}, nil)

	req, err := http.NewRequest("GET", "/health/compare?period1Days=30&period2Days=60", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleCompare(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report healthstats.ComparativeReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Comparison.Improvement)
	assert.Equal(t, 30, report.Period1.PeriodDays)
}
