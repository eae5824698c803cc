package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"` // sleep, movement, nutrition, mindset
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewGoal(userID, title, description, category string, targetDate *time.Time) *Goal {
	return &Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		TargetDate:  targetDate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

type GoalRepositoryInterface interface {
	Create(ctx context.Context, goal *Goal) error
	FindByUserID(ctx context.Context, userID string) ([]*Goal, error)
	FindByID(ctx context.Context, id string) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id string) error
}
