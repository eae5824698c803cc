package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Habit struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Frequency       string     `json:"frequency"` // daily, weekly
	Streak          int        `json:"streak"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewHabit(userID, name, frequency string) *Habit {
	if frequency == "" {
		frequency = "daily"
	}
	return &Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Frequency: frequency,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

type HabitRepositoryInterface interface {
	Create(ctx context.Context, habit *Habit) error
	FindByUserID(ctx context.Context, userID string) ([]*Habit, error)
	FindByID(ctx context.Context, id string) (*Habit, error)
	Update(ctx context.Context, habit *Habit) error
	Delete(ctx context.Context, id string) error
}
