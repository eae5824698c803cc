package entity

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrProgressNotFound = errors.New("progress record not found")

// CoachingProgress is one completed exercise for one user. The natural key is
// (user_id, module_id, component_id): finishing the same exercise again
// replaces the saved response instead of creating a second record.
type CoachingProgress struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	ModuleID     string          `json:"module_id"`
	ComponentID  string          `json:"component_id"`
	ResponseData json.RawMessage `json:"response_data,omitempty"`
	CompletedAt  time.Time       `json:"completed_at"`
}

type ProgressRepositoryInterface interface {
	// UpsertCompletion records a completion, overwriting the response for a
	// repeat of the same (user, module, component) triple.
	UpsertCompletion(ctx context.Context, progress *CoachingProgress) (created bool, err error)
	FindByUserID(ctx context.Context, userID string) ([]*CoachingProgress, error)
	// FindResponse returns the previously saved response for resuming an
	// exercise, or ErrProgressNotFound.
	FindResponse(ctx context.Context, userID, moduleID, componentID string) (*CoachingProgress, error)
}
