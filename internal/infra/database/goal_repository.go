package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bloomafter40/platform/internal/entity"
)

type GoalRepository struct {
	DB *sql.DB
}

func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, title, description, category, target_date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.Category,
		goal.TargetDate, goal.Completed, goal.CreatedAt, goal.UpdatedAt,
	)
	return err
}

func (r *GoalRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Goal, error) {
	query := `
		SELECT id, user_id, title, description, category, target_date, completed, completed_at, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*entity.Goal
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func (r *GoalRepository) FindByID(ctx context.Context, id string) (*entity.Goal, error) {
	query := `
		SELECT id, user_id, title, description, category, target_date, completed, completed_at, created_at, updated_at
		FROM goals
		WHERE id = $1
	`

	goal, err := scanGoal(r.DB.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	query := `
		UPDATE goals
		SET title = $2, description = $3, category = $4, target_date = $5,
			completed = $6, completed_at = $7, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query,
		goal.ID, goal.Title, goal.Description, goal.Category,
		goal.TargetDate, goal.Completed, goal.CompletedAt,
	)
	return err
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	return err
}

func scanGoal(scan func(...any) error) (*entity.Goal, error) {
	goal := &entity.Goal{}
	var description, category sql.NullString
	var targetDate, completedAt sql.NullTime

	err := scan(
		&goal.ID, &goal.UserID, &goal.Title, &description, &category,
		&targetDate, &goal.Completed, &completedAt, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	goal.Description = description.String
	goal.Category = category.String
	if targetDate.Valid {
		goal.TargetDate = &targetDate.Time
	}
	if completedAt.Valid {
		goal.CompletedAt = &completedAt.Time
	}
	return goal, nil
}
