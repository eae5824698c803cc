package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bloomafter40/platform/internal/entity"
)

var ErrRowNotFound = errors.New("row not found")

type JournalRepository struct {
	DB *sql.DB
}

func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

func (r *JournalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (id, user_id, title, content, mood, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.Mood, entry.CreatedAt, entry.UpdatedAt,
	)
	return err
}

func (r *JournalRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.JournalEntry, error) {
	query := `
		SELECT id, user_id, title, content, mood, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*entity.JournalEntry
	for rows.Next() {
		entry := &entity.JournalEntry{}
		var mood sql.NullString
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &mood, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		entry.Mood = mood.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *JournalRepository) FindByID(ctx context.Context, id string) (*entity.JournalEntry, error) {
	query := `
		SELECT id, user_id, title, content, mood, created_at, updated_at
		FROM journal_entries
		WHERE id = $1
	`

	entry := &entity.JournalEntry{}
	var mood sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&entry.ID, &entry.UserID, &entry.Title, &entry.Content, &mood, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}

	entry.Mood = mood.String
	return entry, nil
}

func (r *JournalRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET title = $2, content = $3, mood = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, entry.ID, entry.Title, entry.Content, entry.Mood)
	return err
}

func (r *JournalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	return err
}
