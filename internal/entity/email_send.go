package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmailSend records one successfully delivered nurture email. Opened and
// clicked start false; engagement ingestion lives outside this service.
type EmailSend struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	TemplateType string    `json:"template_type"`
	Subject      string    `json:"subject"`
	Opened       bool      `json:"opened"`
	Clicked      bool      `json:"clicked"`
	SentAt       time.Time `json:"sent_at"`
}

func NewEmailSend(leadID, templateType, subject string, at time.Time) *EmailSend {
	return &EmailSend{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		TemplateType: templateType,
		Subject:      subject,
		SentAt:       at,
	}
}

type EmailSendRepositoryInterface interface {
	Create(ctx context.Context, send *EmailSend) error
	FindByLeadID(ctx context.Context, leadID string) ([]*EmailSend, error)
}
