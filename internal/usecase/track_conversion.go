package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type TrackConversionInput struct {
	LeadID    string          `json:"lead_id"`
	EventType string          `json:"event_type"`
	EventData json.RawMessage `json:"event_data,omitempty"`
	Value     *float64        `json:"value,omitempty"`
}

type TrackConversionUseCase struct {
	Events entity.ConversionEventRepositoryInterface
	Leads  entity.LeadRepositoryInterface
	Now    func() time.Time
}

func NewTrackConversionUseCase(
	events entity.ConversionEventRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	now func() time.Time,
) *TrackConversionUseCase {
	if now == nil {
		now = time.Now
	}
	return &TrackConversionUseCase{Events: events, Leads: leads, Now: now}
}

// Execute appends the event unconditionally. coaching_purchased additionally
// flips the lead to converted and stamps converted_at; every other event
// type is pure logging and leaves the lead row alone.
func (uc *TrackConversionUseCase) Execute(ctx context.Context, input TrackConversionInput) error {
	if input.LeadID == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "lead_id is required"}
	}
	if input.EventType == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "event_type is required"}
	}

	now := uc.Now()
	event := entity.NewConversionEvent(input.LeadID, input.EventType, input.EventData, input.Value, now)

	if err := uc.Events.Append(ctx, event); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to append conversion event: " + err.Error(),
		}
	}

	middleware.RecordConversion(input.EventType)

	if input.EventType == entity.EventTypeCoachingPurchased {
		if err := uc.Leads.MarkConverted(ctx, input.LeadID, now); err != nil {
			log.Printf("⚠️ CRITICAL: purchase event logged but lead %s not marked converted: %v", input.LeadID, err)
			return &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to mark lead converted: " + err.Error(),
			}
		}
		log.Printf("🎉 lead converted: %s", input.LeadID)
	}

	return nil
}
