package healthstats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/metrics"
	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultTrendPeriodDays = 30

	dashboardCacheExpireSeconds = 5 * 60
	dashboardCacheSize          = 1024 * 1024
)

type measurementsRepo interface {
	Add(ctx context.Context, m *WeightMeasurement) (*WeightMeasurement, error)
	List(ctx context.Context, params ListParams) ([]WeightMeasurement, error)
	Latest(ctx context.Context) (*WeightMeasurement, error)
}

type goalsRepo interface {
	SetActive(ctx context.Context, goal *WeightGoal) (*WeightGoal, error)
	GetActive(ctx context.Context) (*WeightGoal, error)
}

type projectionsCache interface {
	Upsert(ctx context.Context, points []ProjectedPoint) error
}

type Service struct {
	measurements   measurementsRepo
	goals          goalsRepo
	projections    projectionsCache
	dashboardCache *freecache.Cache
	metrics        *metrics.Manager

	// ability to inject the clock for unit testing
	NowFunc func() time.Time
}

func NewService(
	measurements measurementsRepo,
	goals goalsRepo,
	projections projectionsCache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		measurements:   measurements,
		goals:          goals,
		projections:    projections,
		dashboardCache: freecache.NewCache(dashboardCacheSize),
		metrics:        metricsManager,
		NowFunc:        time.Now,
	}
}

// AddMeasurement validates and persists a new measurement, then
// refreshes the cached projections best-effort. A failed refresh is
// logged and never fails the write.
func (s *Service) AddMeasurement(ctx context.Context, req AddMeasurementRequest) (_ *WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurement, err := req.ToMeasurement()
	if err != nil {
		return nil, err
	}

	added, err := s.measurements.Add(ctx, measurement)
	if err != nil {
		return nil, fmt.Errorf("add measurement: %w", err)
	}

	s.metrics.CounterMeasurements.Inc()
	s.dashboardCache.Clear()

	defer func() {
		if refreshErr := s.refreshProjections(ctx); refreshErr != nil {
			log.Errorf("refresh projections after measurement %d: %s", added.ID, refreshErr)
		}
	}()

	return added, nil
}

// refreshProjections recomputes the projection rows and replaces the
// cached ones. With not enough samples yet it is a no-op.
func (s *Service) refreshProjections(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.refreshprojections")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements, err := s.measurements.List(ctx, ListParams{})
	if err != nil {
		return fmt.Errorf("list measurements: %w", err)
	}

	result, err := ComputeProjections(measurements, DefaultHorizonDays, s.NowFunc())
	if err != nil {
		if IsInsufficientData(err) {
			log.Debugf("projections not refreshed: %s", err)
			return nil
		}
		return err
	}

	if err := s.projections.Upsert(ctx, result.Projections); err != nil {
		return fmt.Errorf("upsert projections: %w", err)
	}

	s.metrics.CounterProjectionRefreshes.Inc()
	return nil
}

func (s *Service) GetProjections(ctx context.Context, horizonDays int) (_ *ProjectionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.projections")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("horizon-days", horizonDays))

	measurements, err := s.measurements.List(ctx, ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	return ComputeProjections(measurements, horizonDays, s.NowFunc())
}

func (s *Service) GetTrends(ctx context.Context, periodDays int) (_ *TrendAnalysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.trends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("period-days", periodDays))

	if periodDays <= 0 {
		periodDays = DefaultTrendPeriodDays
	}

	now := s.NowFunc()
	measurements, err := s.listPeriod(ctx, periodDays, now)
	if err != nil {
		return nil, err
	}

	return AnalyzeTrends(measurements, periodDays, now)
}

func (s *Service) GetGoalProgress(ctx context.Context) (_ *GoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.goalprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal, err := s.goals.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.measurements.Latest(ctx)
	if err != nil {
		return nil, err
	}

	return ComputeGoalProgress(goal, latest, s.NowFunc()), nil
}

func (s *Service) SetGoal(ctx context.Context, req SetGoalRequest) (_ *WeightGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.setgoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal, err := req.ToGoal()
	if err != nil {
		return nil, err
	}

	setGoal, err := s.goals.SetActive(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("set goal: %w", err)
	}
	return setGoal, nil
}

// Dashboard returns the analytics payload for the period, served from
// an in-memory cache which is invalidated on every new measurement.
func (s *Service) Dashboard(ctx context.Context, periodDays int) (_ *AnalyticsReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if periodDays <= 0 {
		periodDays = DefaultTrendPeriodDays
	}

	cacheKey := []byte(fmt.Sprintf("dashboard::%d", periodDays))
	if cachedBytes, cacheErr := s.dashboardCache.Get(cacheKey); cacheErr == nil {
		var report AnalyticsReport
		if unmarshalErr := json.Unmarshal(cachedBytes, &report); unmarshalErr == nil {
			span.SetAttributes(attribute.Bool("cache-hit", true))
			return &report, nil
		}
	}

	now := s.NowFunc()
	measurements, err := s.listPeriod(ctx, periodDays, now)
	if err != nil {
		return nil, err
	}

	report, err := BuildAnalyticsReport(measurements, periodDays, now)
	if err != nil {
		return nil, err
	}

	if reportBytes, marshalErr := json.Marshal(report); marshalErr == nil {
		if cacheErr := s.dashboardCache.Set(cacheKey, reportBytes, dashboardCacheExpireSeconds); cacheErr != nil {
			log.Debugf("cache dashboard report: %s", cacheErr)
		}
	}

	return report, nil
}

// ComparePeriods runs the dashboard aggregation over two independent
// windows and diffs the results.
func (s *Service) ComparePeriods(ctx context.Context, period1Days, period2Days int) (_ *ComparativeReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.healthstats.compare")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if period1Days <= 0 {
		return nil, &ValidationError{Field: "period1Days", Reason: "must be a positive number"}
	}
	if period2Days <= 0 {
		return nil, &ValidationError{Field: "period2Days", Reason: "must be a positive number"}
	}

	now := s.NowFunc()

	period1Measurements, err := s.listPeriod(ctx, period1Days, now)
	if err != nil {
		return nil, err
	}
	period1Report, err := BuildAnalyticsReport(period1Measurements, period1Days, now)
	if err != nil {
		return nil, fmt.Errorf("period1 analytics: %w", err)
	}

	period2Measurements, err := s.listPeriod(ctx, period2Days, now)
	if err != nil {
		return nil, err
	}
	period2Report, err := BuildAnalyticsReport(period2Measurements, period2Days, now)
	if err != nil {
		return nil, fmt.Errorf("period2 analytics: %w", err)
	}

	return &ComparativeReport{
		Period1:    period1Report,
		Period2:    period2Report,
		Comparison: CompareReports(period1Report, period2Report),
	}, nil
}

func (s *Service) listPeriod(ctx context.Context, periodDays int, now time.Time) ([]WeightMeasurement, error) {
	from := now.AddDate(0, 0, -periodDays)
	measurements, err := s.measurements.List(ctx, ListParams{From: &from})
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return measurements, nil
}
