package entity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type HealthAssessment struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	AssessmentType string          `json:"assessment_type"` // symptom, sleep, stress, cognitive
	Score          int             `json:"score"`
	Answers        json.RawMessage `json:"answers,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewHealthAssessment(userID, assessmentType string, score int, answers json.RawMessage) *HealthAssessment {
	return &HealthAssessment{
		ID:             uuid.New().String(),
		UserID:         userID,
		AssessmentType: assessmentType,
		Score:          score,
		Answers:        answers,
		CreatedAt:      time.Now(),
	}
}

type AssessmentRepositoryInterface interface {
	Create(ctx context.Context, assessment *HealthAssessment) error
	FindByUserID(ctx context.Context, userID string) ([]*HealthAssessment, error)
}
