package newsletter

import (
	"context"
	"errors"
	"time"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrSubscriberNotFound = errors.New("subscriber not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Subscribe inserts the subscriber, or revives an unsubscribed row for
// the same address. Subscribing twice is a no-op.
func (r *Repo) Subscribe(ctx context.Context, s *Subscriber) (_ *Subscriber, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.newsletter.subscribe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO newsletter_subscriber (email, unsubscribe_token, subscribed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET
			unsubscribed_at = NULL,
			subscribed_at = EXCLUDED.subscribed_at
		RETURNING id
	`,
		s.Email,
		s.UnsubscribeToken,
		s.SubscribedAt,
	).Scan(&s.ID)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repo) Unsubscribe(ctx context.Context, token string, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.newsletter.unsubscribe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE newsletter_subscriber
		SET unsubscribed_at = $1
		WHERE unsubscribe_token = $2 AND unsubscribed_at IS NULL
	`, at, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *Subscriber, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.newsletter.getbyemail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s := &Subscriber{}
	err = r.db.QueryRow(ctx, `
		SELECT id, email, unsubscribe_token, subscribed_at, unsubscribed_at
		FROM newsletter_subscriber
		WHERE email = $1
	`, email).Scan(&s.ID, &s.Email, &s.UnsubscribeToken, &s.SubscribedAt, &s.UnsubscribedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}
	return s, nil
}
