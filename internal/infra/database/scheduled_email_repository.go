package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
)

type ScheduledEmailRepository struct {
	DB *sql.DB
}

func NewScheduledEmailRepository(db *sql.DB) *ScheduledEmailRepository {
	return &ScheduledEmailRepository{DB: db}
}

// Schedule inserts a pending drip row. The unique index on
// (lead_id, template_type) makes re-arming a sequence a no-op per step.
func (r *ScheduledEmailRepository) Schedule(ctx context.Context, email *entity.ScheduledEmail) error {
	query := `
		INSERT INTO scheduled_emails (id, lead_id, template_type, subject, fire_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (lead_id, template_type) DO NOTHING
	`

	_, err := r.DB.ExecContext(ctx, query,
		email.ID,
		email.LeadID,
		email.TemplateType,
		email.Subject,
		email.FireAt,
		email.Status,
		email.CreatedAt,
	)
	return err
}

// ClaimDue flips due pending rows to queued and returns them. The UPDATE is
// a single statement, so concurrent ticks (or a second instance) can never
// hand the same row to two consumers.
func (r *ScheduledEmailRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledEmail, error) {
	query := `
		UPDATE scheduled_emails
		SET status = $1
		WHERE id IN (
			SELECT id FROM scheduled_emails
			WHERE status = $2 AND fire_at <= $3
			ORDER BY fire_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, lead_id, template_type, subject, fire_at, status, created_at
	`

	rows, err := r.DB.QueryContext(ctx, query,
		entity.ScheduledEmailQueued,
		entity.ScheduledEmailPending,
		now,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []*entity.ScheduledEmail
	for rows.Next() {
		email := &entity.ScheduledEmail{}
		if err := rows.Scan(
			&email.ID,
			&email.LeadID,
			&email.TemplateType,
			&email.Subject,
			&email.FireAt,
			&email.Status,
			&email.CreatedAt,
		); err != nil {
			return nil, err
		}
		due = append(due, email)
	}

	return due, rows.Err()
}

func (r *ScheduledEmailRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE scheduled_emails SET status = $2, sent_at = $3 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, entity.ScheduledEmailSent, at)
	return err
}

func (r *ScheduledEmailRepository) MarkSkipped(ctx context.Context, id string) error {
	query := `UPDATE scheduled_emails SET status = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, entity.ScheduledEmailSkipped)
	return err
}

func (r *ScheduledEmailRepository) MarkFailed(ctx context.Context, id string) error {
	query := `UPDATE scheduled_emails SET status = $2 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id, entity.ScheduledEmailFailed)
	return err
}

func (r *ScheduledEmailRepository) DeleteByLeadID(ctx context.Context, leadID string) error {
	query := `DELETE FROM scheduled_emails WHERE lead_id = $1`
	_, err := r.DB.ExecContext(ctx, query, leadID)
	return err
}
