package database

import (
	"context"
	"database/sql"

	"github.com/bloomafter40/platform/internal/entity"
)

type MoodRepository struct {
	DB *sql.DB
}

func NewMoodRepository(db *sql.DB) *MoodRepository {
	return &MoodRepository{DB: db}
}

func (r *MoodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, user_id, mood, energy, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Mood, entry.Energy, entry.Notes, entry.CreatedAt,
	)
	return err
}

func (r *MoodRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.MoodEntry, error) {
	query := `
		SELECT id, user_id, mood, energy, notes, created_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*entity.MoodEntry
	for rows.Next() {
		entry := &entity.MoodEntry{}
		var notes sql.NullString
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Mood, &entry.Energy, &notes, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Notes = notes.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
