package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/registry"
)

func TestCompleteExerciseRecordsProgress(t *testing.T) {
	mockProgress := new(MockProgressRepository)
	mockProgress.On("UpsertCompletion", mock.Anything, mock.MatchedBy(func(p *entity.CoachingProgress) bool {
		return p.UserID == "user-1" && p.ModuleID == "week1" && p.ComponentID == "box-breathing"
	})).Return(true, nil)

	uc := NewCompleteExerciseUseCase(registry.New(), mockProgress, nil)

	output, err := uc.Execute(context.Background(), CompleteExerciseInput{
		UserID:       "user-1",
		ModuleID:     "week1",
		ComponentID:  "box-breathing",
		ResponseData: json.RawMessage(`{"rounds_completed": 4, "calm_rating": 5}`),
	})

	assert.NoError(t, err)
	assert.False(t, output.Repeated)
	mockProgress.AssertExpectations(t)
}

func TestCompleteExerciseRepeatIsIdempotent(t *testing.T) {
	mockProgress := new(MockProgressRepository)
	// The store reports an overwrite, not a second record.
	mockProgress.On("UpsertCompletion", mock.Anything, mock.Anything).Return(false, nil)

	uc := NewCompleteExerciseUseCase(registry.New(), mockProgress, nil)

	output, err := uc.Execute(context.Background(), CompleteExerciseInput{
		UserID:      "user-1",
		ModuleID:    "week1",
		ComponentID: "box-breathing",
	})

	assert.NoError(t, err)
	assert.True(t, output.Repeated)
}

func TestCompleteExerciseRejectsUnknownPairs(t *testing.T) {
	mockProgress := new(MockProgressRepository)
	uc := NewCompleteExerciseUseCase(registry.New(), mockProgress, nil)

	_, err := uc.Execute(context.Background(), CompleteExerciseInput{
		UserID: "user-1", ModuleID: "week9", ComponentID: "box-breathing",
	})
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MODULE_NOT_AVAILABLE", domainErr.Code)

	_, err = uc.Execute(context.Background(), CompleteExerciseInput{
		UserID: "user-1", ModuleID: "week1", ComponentID: "nope",
	})
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "COMPONENT_NOT_FOUND", domainErr.Code)

	mockProgress.AssertNotCalled(t, "UpsertCompletion", mock.Anything, mock.Anything)
}

func TestCompleteExerciseRejectsNonObjectPayload(t *testing.T) {
	uc := NewCompleteExerciseUseCase(registry.New(), new(MockProgressRepository), nil)

	for _, payload := range []string{`[1,2,3]`, `"text"`, `42`, `null`} {
		_, err := uc.Execute(context.Background(), CompleteExerciseInput{
			UserID:       "user-1",
			ModuleID:     "week1",
			ComponentID:  "box-breathing",
			ResponseData: json.RawMessage(payload),
		})
		assert.True(t, IsDomainError(err), "payload %s", payload)
	}
}
