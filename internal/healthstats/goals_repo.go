package healthstats

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalsRepo struct {
	db *pgxpool.Pool
}

func NewGoalsRepo(db *pgxpool.Pool) *GoalsRepo {
	return &GoalsRepo{
		db: db,
	}
}

// SetActive deactivates all existing goals and inserts the given goal
// as the single active one, in one transaction.
func (r *GoalsRepo) SetActive(ctx context.Context, goal *WeightGoal) (_ *WeightGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthstats.goals.setactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		UPDATE weight_goal SET is_active = FALSE WHERE is_active = TRUE
	`); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO weight_goal
			(start_weight_kg, target_weight_kg, start_date, target_date, weekly_goal_kg, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		RETURNING id, created_at
	`,
		goal.StartWeightKg,
		goal.TargetWeightKg,
		goal.StartDate,
		goal.TargetDate,
		goal.WeeklyGoalKg,
	).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		return nil, err
	}

	goal.IsActive = true
	return goal, nil
}

func (r *GoalsRepo) GetActive(ctx context.Context) (_ *WeightGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.healthstats.goals.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal := &WeightGoal{}
	err = r.db.QueryRow(ctx, `
		SELECT id, start_weight_kg, target_weight_kg, start_date, target_date, weekly_goal_kg, is_active, created_at
		FROM weight_goal
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(
		&goal.ID,
		&goal.StartWeightKg,
		&goal.TargetWeightKg,
		&goal.StartDate,
		&goal.TargetDate,
		&goal.WeeklyGoalKg,
		&goal.IsActive,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveGoal
		}
		return nil, err
	}
	return goal, nil
}
