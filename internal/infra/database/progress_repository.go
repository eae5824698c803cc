package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bloomafter40/platform/internal/entity"
)

type ProgressRepository struct {
	DB *sql.DB
}

func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// UpsertCompletion keys on (user_id, module_id, component_id). A repeat
// completion overwrites the saved response and timestamp in place; xmax = 0
// distinguishes a first completion from a repeat.
func (r *ProgressRepository) UpsertCompletion(ctx context.Context, progress *entity.CoachingProgress) (bool, error) {
	query := `
		INSERT INTO coaching_progress (id, user_id, module_id, component_id, response_data, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, module_id, component_id)
		DO UPDATE SET
			response_data = EXCLUDED.response_data,
			completed_at = EXCLUDED.completed_at
		RETURNING id, (xmax = 0)
	`

	var created bool
	err := r.DB.QueryRowContext(ctx, query,
		progress.ID,
		progress.UserID,
		progress.ModuleID,
		progress.ComponentID,
		[]byte(progress.ResponseData),
		progress.CompletedAt,
	).Scan(&progress.ID, &created)
	if err != nil {
		return false, err
	}

	return created, nil
}

func (r *ProgressRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.CoachingProgress, error) {
	query := `
		SELECT id, user_id, module_id, component_id, response_data, completed_at
		FROM coaching_progress
		WHERE user_id = $1
		ORDER BY completed_at
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.CoachingProgress
	for rows.Next() {
		record := &entity.CoachingProgress{}
		var response []byte
		if err := rows.Scan(&record.ID, &record.UserID, &record.ModuleID, &record.ComponentID, &response, &record.CompletedAt); err != nil {
			return nil, err
		}
		record.ResponseData = response
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *ProgressRepository) FindResponse(ctx context.Context, userID, moduleID, componentID string) (*entity.CoachingProgress, error) {
	query := `
		SELECT id, user_id, module_id, component_id, response_data, completed_at
		FROM coaching_progress
		WHERE user_id = $1 AND module_id = $2 AND component_id = $3
	`

	record := &entity.CoachingProgress{}
	var response []byte
	err := r.DB.QueryRowContext(ctx, query, userID, moduleID, componentID).Scan(
		&record.ID, &record.UserID, &record.ModuleID, &record.ComponentID, &response, &record.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProgressNotFound
	}
	if err != nil {
		return nil, err
	}

	record.ResponseData = response
	return record, nil
}
