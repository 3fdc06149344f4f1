package healthstats

import (
	"context"
	"errors"
	"time"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ListParams struct {
	From *time.Time
	To   *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, m *WeightMeasurement) (_ *WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthstats.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO weight_measurement
			(weight_kg, body_fat_percentage, muscle_mass_kg, water_percentage, timestamp, source)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		m.WeightKg,
		m.BodyFatPercentage,
		m.MuscleMassKg,
		m.WaterPercentage,
		m.Timestamp,
		m.Source,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns measurements in the given range ordered by timestamp
// ascending, oldest first, as the analytics components expect.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthstats.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, weight_kg, body_fat_percentage, muscle_mass_kg, water_percentage, timestamp, source
		FROM weight_measurement
		WHERE ($1::timestamptz IS NULL OR timestamp >= $1)
		  AND ($2::timestamptz IS NULL OR timestamp <= $2)
		ORDER BY timestamp ASC;
	`, params.From, params.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	measurements := make([]WeightMeasurement, 0)
	for rows.Next() {
		var m WeightMeasurement
		if err := rows.Scan(
			&m.ID,
			&m.WeightKg,
			&m.BodyFatPercentage,
			&m.MuscleMassKg,
			&m.WaterPercentage,
			&m.Timestamp,
			&m.Source,
		); err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}

	return measurements, nil
}

func (r *Repo) Latest(ctx context.Context) (_ *WeightMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthstats.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m := &WeightMeasurement{}
	err = r.db.QueryRow(ctx, `
		SELECT id, weight_kg, body_fat_percentage, muscle_mass_kg, water_percentage, timestamp, source
		FROM weight_measurement
		ORDER BY timestamp DESC
		LIMIT 1
	`).Scan(
		&m.ID,
		&m.WeightKg,
		&m.BodyFatPercentage,
		&m.MuscleMassKg,
		&m.WaterPercentage,
		&m.Timestamp,
		&m.Source,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return m, nil
}
