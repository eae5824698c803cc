package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bloomafter40/platform/internal/entity"
)

func TestTrackConversionPurchaseConvertsLead(t *testing.T) {
	mockEvents := new(MockConversionEventRepository)
	mockLeads := new(MockLeadRepository)

	now := time.Date(2026, 3, 22, 14, 0, 0, 0, time.UTC)
	value := 297.0

	mockEvents.On("Append", mock.MatchedBy(func(_ context.Context) bool { return true }), mock.MatchedBy(func(e *entity.ConversionEvent) bool {
		return e.LeadID == "lead-123" &&
			e.EventType == entity.EventTypeCoachingPurchased &&
			e.Value != nil && *e.Value == 297.0 &&
			e.CreatedAt.Equal(now)
	})).Return(nil)
	mockLeads.On("MarkConverted", mock.Anything, "lead-123", now).Return(nil)

	uc := NewTrackConversionUseCase(mockEvents, mockLeads, fixedClock(now))

	err := uc.Execute(context.Background(), TrackConversionInput{
		LeadID:    "lead-123",
		EventType: entity.EventTypeCoachingPurchased,
		Value:     &value,
	})

	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
	mockLeads.AssertExpectations(t)
}

func TestTrackConversionPageViewIsPureLogging(t *testing.T) {
	mockEvents := new(MockConversionEventRepository)
	mockLeads := new(MockLeadRepository)

	mockEvents.On("Append", mock.Anything, mock.Anything).Return(nil)

	uc := NewTrackConversionUseCase(mockEvents, mockLeads, nil)

	err := uc.Execute(context.Background(), TrackConversionInput{
		LeadID:    "lead-123",
		EventType: "page_view",
	})

	assert.NoError(t, err)
	mockLeads.AssertNotCalled(t, "MarkConverted", mock.Anything, mock.Anything, mock.Anything)
}

func TestTrackConversionValidation(t *testing.T) {
	uc := NewTrackConversionUseCase(new(MockConversionEventRepository), new(MockLeadRepository), nil)

	err := uc.Execute(context.Background(), TrackConversionInput{EventType: "page_view"})
	assert.True(t, IsDomainError(err))

	err = uc.Execute(context.Background(), TrackConversionInput{LeadID: "lead-123"})
	assert.True(t, IsDomainError(err))
}
