package database

import (
	"context"
	"database/sql"

	"github.com/bloomafter40/platform/internal/entity"
)

type EmailSendRepository struct {
	DB *sql.DB
}

func NewEmailSendRepository(db *sql.DB) *EmailSendRepository {
	return &EmailSendRepository{DB: db}
}

func (r *EmailSendRepository) Create(ctx context.Context, send *entity.EmailSend) error {
	query := `
		INSERT INTO email_sends (id, lead_id, template_type, subject, opened, clicked, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		send.ID,
		send.LeadID,
		send.TemplateType,
		send.Subject,
		send.Opened,
		send.Clicked,
		send.SentAt,
	)
	return err
}

func (r *EmailSendRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.EmailSend, error) {
	query := `
		SELECT id, lead_id, template_type, subject, opened, clicked, sent_at
		FROM email_sends
		WHERE lead_id = $1
		ORDER BY sent_at
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sends []*entity.EmailSend
	for rows.Next() {
		send := &entity.EmailSend{}
		if err := rows.Scan(&send.ID, &send.LeadID, &send.TemplateType, &send.Subject, &send.Opened, &send.Clicked, &send.SentAt); err != nil {
			return nil, err
		}
		sends = append(sends, send)
	}

	return sends, rows.Err()
}
