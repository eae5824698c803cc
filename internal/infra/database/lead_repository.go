package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert keys on email. The insert branch stores everything; the conflict
// branch refreshes last_engaged and fills name fields only when the new
// value is non-empty, and never touches status or source. xmax = 0 is true
// only for a freshly inserted row, which is how we learn which branch ran.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	query := `
		INSERT INTO leads (id, email, first_name, last_name, source, lead_magnet, status, last_engaged, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			first_name = COALESCE(NULLIF(EXCLUDED.first_name, ''), leads.first_name),
			last_name = COALESCE(NULLIF(EXCLUDED.last_name, ''), leads.last_name),
			last_engaged = EXCLUDED.last_engaged,
			updated_at = NOW()
		RETURNING id, first_name, last_name, source, lead_magnet, status, last_engaged, converted_at, created_at, updated_at, (xmax = 0)
	`

	var created bool
	var firstName, lastName, leadMagnet sql.NullString
	var convertedAt sql.NullTime

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.Email,
		lead.FirstName,
		lead.LastName,
		lead.Source,
		lead.LeadMagnet,
		lead.Status,
		lead.LastEngaged,
	).Scan(
		&lead.ID,
		&firstName,
		&lastName,
		&lead.Source,
		&leadMagnet,
		&lead.Status,
		&lead.LastEngaged,
		&convertedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&created,
	)
	if err != nil {
		return false, err
	}

	lead.FirstName = firstName.String
	lead.LastName = lastName.String
	lead.LeadMagnet = leadMagnet.String
	if convertedAt.Valid {
		lead.ConvertedAt = &convertedAt.Time
	}

	return created, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, email, first_name, last_name, source, lead_magnet, status, last_engaged, converted_at, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	lead := &entity.Lead{}
	var firstName, lastName, leadMagnet sql.NullString
	var convertedAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Email,
		&firstName,
		&lastName,
		&lead.Source,
		&leadMagnet,
		&lead.Status,
		&lead.LastEngaged,
		&convertedAt,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	lead.FirstName = firstName.String
	lead.LastName = lastName.String
	lead.LeadMagnet = leadMagnet.String
	if convertedAt.Valid {
		lead.ConvertedAt = &convertedAt.Time
	}

	return lead, nil
}

func (r *LeadRepository) MarkConverted(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE leads
		SET status = $2, converted_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, id, entity.LeadStatusConverted, at)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}
