package healthstats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"
	"github.com/ivanpet/ivanpetcom/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=healthstats_test

type statsService interface {
	AddMeasurement(ctx context.Context, req AddMeasurementRequest) (*WeightMeasurement, error)
	GetProjections(ctx context.Context, horizonDays int) (*ProjectionResult, error)
	GetTrends(ctx context.Context, periodDays int) (*TrendAnalysis, error)
	GetGoalProgress(ctx context.Context) (*GoalProgress, error)
	SetGoal(ctx context.Context, req SetGoalRequest) (*WeightGoal, error)
	Dashboard(ctx context.Context, periodDays int) (*AnalyticsReport, error)
	ComparePeriods(ctx context.Context, period1Days, period2Days int) (*ComparativeReport, error)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddMeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new measurement, unmarshal json params: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	added, err := handler.service.AddMeasurement(ctx, req)
	if err != nil {
		log.Errorf("failed to add new measurement: %s", err)
		writeError(w, err)
		return
	}

	log.Debugf("new measurement added: %d [%s]", added.ID, added.Source)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new measurement: %s", err)
		http.Error(w, "error, failed to add new measurement", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleGetProjections(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.projections")
	defer span.End()

	horizonDays := intQueryParam(r, "horizonDays", DefaultHorizonDays)

	result, err := handler.service.GetProjections(ctx, horizonDays)
	if err != nil {
		log.Errorf("failed to get projections: %s", err)
		writeError(w, err)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal projections: %s", err)
		http.Error(w, "failed to get projections", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleGetTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.trends")
	defer span.End()

	periodDays := intQueryParam(r, "periodDays", DefaultTrendPeriodDays)

	analysis, err := handler.service.GetTrends(ctx, periodDays)
	if err != nil {
		log.Errorf("failed to get trends: %s", err)
		writeError(w, err)
		return
	}

	analysisJson, err := json.Marshal(analysis)
	if err != nil {
		log.Errorf("failed to marshal trends: %s", err)
		http.Error(w, "failed to get trends", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, analysisJson, http.StatusOK)
}

func (handler *Handler) HandleGoalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.goalprogress")
	defer span.End()

	progress, err := handler.service.GetGoalProgress(ctx)
	if err != nil {
		log.Errorf("failed to get goal progress: %s", err)
		writeError(w, err)
		return
	}

	progressJson, err := json.Marshal(progress)
	if err != nil {
		log.Errorf("failed to marshal goal progress: %s", err)
		http.Error(w, "failed to get goal progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.setgoal")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set goal, unmarshal json params: %s", err)
		http.Error(w, "set goal failed", http.StatusBadRequest)
		return
	}

	goal, err := handler.service.SetGoal(ctx, req)
	if err != nil {
		log.Errorf("failed to set goal: %s", err)
		writeError(w, err)
		return
	}

	log.Debugf("new goal set: %d, target %.1f kg", goal.ID, goal.TargetWeightKg)

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "error, failed to set goal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusCreated)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.dashboard")
	defer span.End()

	periodDays := intQueryParam(r, "periodDays", DefaultTrendPeriodDays)

	report, err := handler.service.Dashboard(ctx, periodDays)
	if err != nil {
		log.Errorf("failed to get dashboard: %s", err)
		writeError(w, err)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal dashboard: %s", err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusOK)
}

func (handler *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.healthstats.compare")
	defer span.End()

	period1Days := intQueryParam(r, "period1Days", DefaultTrendPeriodDays)
	period2Days := intQueryParam(r, "period2Days", 2*DefaultTrendPeriodDays)

	report, err := handler.service.ComparePeriods(ctx, period1Days, period2Days)
	if err != nil {
		log.Errorf("failed to compare periods: %s", err)
		writeError(w, err)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("failed to marshal period comparison: %s", err)
		http.Error(w, "failed to compare periods", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, reportJson, http.StatusOK)
}

// writeError maps the error taxonomy to a structured payload naming
// the error kind and reason.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Message: err.Error()}
	status := http.StatusInternalServerError

	var validationErr *ValidationError
	var insufficientErr *InsufficientDataError
	switch {
	case errors.As(err, &validationErr):
		resp.Error = "validation_error"
		status = http.StatusBadRequest
	case errors.As(err, &insufficientErr):
		resp.Error = "insufficient_data"
		status = http.StatusBadRequest
	case errors.Is(err, ErrNoData):
		resp.Error = "no_data"
		status = http.StatusNotFound
	case errors.Is(err, ErrNoActiveGoal):
		resp.Error = "no_active_goal"
		status = http.StatusNotFound
	default:
		resp.Error = "internal_error"
		resp.Message = "internal server error"
	}

	respJson, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, status)
}

func intQueryParam(r *http.Request, name string, defaultValue int) int {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
