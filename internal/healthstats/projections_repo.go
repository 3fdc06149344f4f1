package healthstats

import (
	"context"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ProjectionsRepo is a cache of derived projection rows, keyed by the
// projected date. Rows are never the source of truth and are fully
// replaced on each recomputation.
type ProjectionsRepo struct {
	db *pgxpool.Pool
}

func NewProjectionsRepo(db *pgxpool.Pool) *ProjectionsRepo {
	return &ProjectionsRepo{
		db: db,
	}
}

func (r *ProjectionsRepo) Upsert(ctx context.Context, points []ProjectedPoint) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthstats.projections.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("points", len(points)))

	for _, p := range points {
		if _, err = r.db.Exec(ctx, `
			INSERT INTO weight_projection
				(date, projected_weight_kg, confidence, daily_rate, days_from_now)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (date) DO UPDATE SET
				projected_weight_kg = EXCLUDED.projected_weight_kg,
				confidence = EXCLUDED.confidence,
				daily_rate = EXCLUDED.daily_rate,
				days_from_now = EXCLUDED.days_from_now
		`,
			p.Date,
			p.ProjectedWeightKg,
			p.Confidence,
			p.DailyRate,
			p.DaysFromNow,
		); err != nil {
			return err
		}
	}
	return nil
}
