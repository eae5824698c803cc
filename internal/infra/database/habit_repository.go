package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bloomafter40/platform/internal/entity"
)

type HabitRepository struct {
	DB *sql.DB
}

func NewHabitRepository(db *sql.DB) *HabitRepository {
	return &HabitRepository{DB: db}
}

func (r *HabitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, name, frequency, streak, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Frequency, habit.Streak, habit.CreatedAt, habit.UpdatedAt,
	)
	return err
}

func (r *HabitRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Habit, error) {
	query := `
		SELECT id, user_id, name, frequency, streak, last_completed_at, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []*entity.Habit
	for rows.Next() {
		habit := &entity.Habit{}
		var lastCompleted sql.NullTime
		if err := rows.Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Frequency, &habit.Streak, &lastCompleted, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
			return nil, err
		}
		if lastCompleted.Valid {
			habit.LastCompletedAt = &lastCompleted.Time
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (r *HabitRepository) FindByID(ctx context.Context, id string) (*entity.Habit, error) {
	query := `
		SELECT id, user_id, name, frequency, streak, last_completed_at, created_at, updated_at
		FROM habits
		WHERE id = $1
	`

	habit := &entity.Habit{}
	var lastCompleted sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&habit.ID, &habit.UserID, &habit.Name, &habit.Frequency, &habit.Streak, &lastCompleted, &habit.CreatedAt, &habit.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}

	if lastCompleted.Valid {
		habit.LastCompletedAt = &lastCompleted.Time
	}
	return habit, nil
}

func (r *HabitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	query := `
		UPDATE habits
		SET name = $2, frequency = $3, streak = $4, last_completed_at = $5, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query,
		habit.ID, habit.Name, habit.Frequency, habit.Streak, habit.LastCompletedAt,
	)
	return err
}

func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	return err
}
