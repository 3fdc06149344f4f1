package contact

import (
	"context"

	"github.com/ivanpet/ivanpetcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, m *Message) (_ *Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.contact.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO contact_message (name, email, subject, body, is_spam, spam_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		m.Name,
		m.Email,
		m.Subject,
		m.Body,
		m.IsSpam,
		m.SpamScore,
		m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns messages newest first, spam excluded unless asked for.
func (r *Repo) List(ctx context.Context, includeSpam bool) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.contact.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, subject, body, is_spam, spam_score, created_at
		FROM contact_message
		WHERE ($1::boolean IS TRUE OR is_spam = FALSE)
		ORDER BY created_at DESC;
	`, includeSpam)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	messages := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.Subject,
			&m.Body,
			&m.IsSpam,
			&m.SpamScore,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, nil
}
