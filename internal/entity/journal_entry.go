package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewJournalEntry(userID, title, content, mood string) (*JournalEntry, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}

	return &JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

type JournalRepositoryInterface interface {
	Create(ctx context.Context, entry *JournalEntry) error
	FindByUserID(ctx context.Context, userID string) ([]*JournalEntry, error)
	FindByID(ctx context.Context, id string) (*JournalEntry, error)
	Update(ctx context.Context, entry *JournalEntry) error
	Delete(ctx context.Context, id string) error
}
