package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
	"github.com/bloomafter40/platform/internal/registry"
)

type CompleteExerciseInput struct {
	UserID       string
	ModuleID     string
	ComponentID  string
	ResponseData json.RawMessage
}

type CompleteExerciseOutput struct {
	Progress *entity.CoachingProgress `json:"progress"`
	// Repeated reports that this completion replaced an earlier one for the
	// same exercise rather than creating a new record.
	Repeated bool `json:"repeated"`
}

type CompleteExerciseUseCase struct {
	Registry *registry.Registry
	Progress entity.ProgressRepositoryInterface
	Now      func() time.Time
}

func NewCompleteExerciseUseCase(
	reg *registry.Registry,
	progress entity.ProgressRepositoryInterface,
	now func() time.Time,
) *CompleteExerciseUseCase {
	if now == nil {
		now = time.Now
	}
	return &CompleteExerciseUseCase{Registry: reg, Progress: progress, Now: now}
}

// Execute records a finished exercise. The (module, component) pair must
// resolve in the registry, and the response payload must be a JSON object
// (no further schema is enforced). Finishing the same exercise twice is an
// upsert, not a second record.
func (uc *CompleteExerciseUseCase) Execute(ctx context.Context, input CompleteExerciseInput) (*CompleteExerciseOutput, error) {
	if input.UserID == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "user_id is required"}
	}

	_, outcome := uc.Registry.Resolve(input.ModuleID, input.ComponentID)
	switch outcome {
	case registry.ModuleComingSoon:
		return nil, &DomainError{Code: "MODULE_NOT_AVAILABLE", Message: "module " + input.ModuleID + " is not available yet"}
	case registry.ComponentNotFound:
		return nil, &DomainError{Code: "COMPONENT_NOT_FOUND", Message: "component " + input.ComponentID + " not found in " + input.ModuleID}
	}

	response := input.ResponseData
	if len(response) == 0 {
		response = json.RawMessage(`{}`)
	}
	var asObject map[string]any
	if err := json.Unmarshal(response, &asObject); err != nil || asObject == nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "response_data must be a JSON object"}
	}

	progress := &entity.CoachingProgress{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		ModuleID:     input.ModuleID,
		ComponentID:  input.ComponentID,
		ResponseData: response,
		CompletedAt:  uc.Now(),
	}

	created, err := uc.Progress.UpsertCompletion(ctx, progress)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to record completion: " + err.Error(),
		}
	}

	if created {
		middleware.RecordExerciseCompletion(input.ModuleID)
	}

	return &CompleteExerciseOutput{Progress: progress, Repeated: !created}, nil
}
