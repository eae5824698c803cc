package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      int       `json:"mood"`   // 1-5 Likert
	Energy    int       `json:"energy"` // 1-5 Likert
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMoodEntry(userID string, mood, energy int, notes string) (*MoodEntry, error) {
	if mood < 1 || mood > 5 {
		return nil, errors.New("mood must be between 1 and 5")
	}
	if energy < 1 || energy > 5 {
		return nil, errors.New("energy must be between 1 and 5")
	}

	return &MoodEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mood:      mood,
		Energy:    energy,
		Notes:     notes,
		CreatedAt: time.Now(),
	}, nil
}

type MoodRepositoryInterface interface {
	Create(ctx context.Context, entry *MoodEntry) error
	FindByUserID(ctx context.Context, userID string) ([]*MoodEntry, error)
}
