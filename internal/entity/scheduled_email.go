package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Scheduled email status values. A row is claimed exactly once by the drip
// worker; failed rows stay visible for inspection instead of vanishing.
const (
	ScheduledEmailPending = "pending"
	ScheduledEmailQueued  = "queued"
	ScheduledEmailSent    = "sent"
	ScheduledEmailSkipped = "skipped"
	ScheduledEmailFailed  = "failed"
)

// ScheduledEmail is a durable pending drip step. Persisting fire_at (rather
// than holding an in-process timer) is what lets the sequence survive a
// restart and lets a second app instance dedupe on (lead_id, template_type).
type ScheduledEmail struct {
	ID           string     `json:"id"`
	LeadID       string     `json:"lead_id"`
	TemplateType string     `json:"template_type"`
	Subject      string     `json:"subject"`
	FireAt       time.Time  `json:"fire_at"`
	Status       string     `json:"status"` // pending, sent, failed
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewScheduledEmail(leadID, templateType, subject string, fireAt, now time.Time) *ScheduledEmail {
	return &ScheduledEmail{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		TemplateType: templateType,
		Subject:      subject,
		FireAt:       fireAt,
		Status:       ScheduledEmailPending,
		CreatedAt:    now,
	}
}

type ScheduledEmailRepositoryInterface interface {
	// Schedule inserts the row; a duplicate (lead_id, template_type) pair is
	// silently dropped so re-triggering a sequence never double-sends a step.
	Schedule(ctx context.Context, email *ScheduledEmail) error
	// ClaimDue atomically flips pending rows with fire_at <= now to queued
	// and returns them, so two worker ticks never claim the same row.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*ScheduledEmail, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	// MarkSkipped resolves a claimed row that was deliberately not sent
	// (lead gone or no longer active).
	MarkSkipped(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
	// DeleteByLeadID removes every scheduled row for a lead. Used to sweep
	// partial sequences when a capture is rolled back.
	DeleteByLeadID(ctx context.Context, leadID string) error
}
