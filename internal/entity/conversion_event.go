package entity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventTypeCoachingPurchased is the only event type with a side effect on the
// lead row (status flips to converted). Everything else is pure logging.
const EventTypeCoachingPurchased = "coaching_purchased"

// ConversionEvent is an append-only funnel analytics record.
type ConversionEvent struct {
	ID        string          `json:"id"`
	LeadID    string          `json:"lead_id"`
	EventType string          `json:"event_type"`
	EventData json.RawMessage `json:"event_data,omitempty"`
	Value     *float64        `json:"value,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewConversionEvent(leadID, eventType string, eventData json.RawMessage, value *float64, at time.Time) *ConversionEvent {
	return &ConversionEvent{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		EventType: eventType,
		EventData: eventData,
		Value:     value,
		CreatedAt: at,
	}
}

type ConversionEventRepositoryInterface interface {
	Append(ctx context.Context, event *ConversionEvent) error
	FindByLeadID(ctx context.Context, leadID string) ([]*ConversionEvent, error)
}
