package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/mail"
)

// WelcomeStep is one email of the fixed drip sequence.
type WelcomeStep struct {
	Subject      string
	TemplateType string
	DelayDays    int
}

// WelcomeSequence is the nurture drip armed on first capture. Order, content
// and delays are fixed; nothing is configurable per lead.
var WelcomeSequence = []WelcomeStep{
	{"Your Midlife Reset Guide is here 🌸", mail.TemplateLeadMagnetDelivery, 0},
	{"Two minutes that tell you where to start", mail.TemplateAssessmentReminder, 2},
	{"Why your sleep changed (and what actually helps)", mail.TemplateEducationalContent1, 5},
	{"The ten minute habit our members swear by", mail.TemplateEducationalContent2, 8},
	{"Ready for structure instead of willpower?", mail.TemplateSoftPitch, 12},
}

type CaptureLeadInput struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Source     string `json:"source"`
	LeadMagnet string `json:"lead_magnet,omitempty"`
}

type CaptureLeadUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Events    entity.ConversionEventRepositoryInterface
	Scheduled entity.ScheduledEmailRepositoryInterface
	Now       func() time.Time
}

func NewCaptureLeadUseCase(
	leads entity.LeadRepositoryInterface,
	events entity.ConversionEventRepositoryInterface,
	scheduled entity.ScheduledEmailRepositoryInterface,
	now func() time.Time,
) *CaptureLeadUseCase {
	if now == nil {
		now = time.Now
	}
	return &CaptureLeadUseCase{
		Leads:     leads,
		Events:    events,
		Scheduled: scheduled,
		Now:       now,
	}
}

// Execute upserts the lead by email. A repeat capture only refreshes
// engagement (and fills name fields when newly provided); the welcome
// sequence and the lead_captured event fire on first capture only.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	now := uc.Now()
	lead := &entity.Lead{
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Source:      input.Source,
		LeadMagnet:  input.LeadMagnet,
		Status:      entity.LeadStatusActive,
		LastEngaged: now,
	}

	created, err := uc.Leads.Upsert(ctx, lead)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	if !created {
		log.Printf("🔁 lead re-engaged: %s (source=%s)", lead.Email, input.Source)
		return lead, nil
	}

	txn := NewTransaction()

	txn.AddOperation("schedule_welcome_sequence", func(ctx context.Context) error {
		return uc.TriggerWelcomeSequence(ctx, lead.ID)
	})
	// Undoes the upsert even when scheduling itself fails mid-loop: the
	// partial rows and the lead both go, so a retried capture takes the
	// insert branch again and re-arms the sequence.
	txn.AddCompensation("discard_captured_lead", func(ctx context.Context) error {
		if err := uc.Scheduled.DeleteByLeadID(ctx, lead.ID); err != nil {
			return err
		}
		return uc.Leads.Delete(ctx, lead.ID)
	})

	txn.AddOperation("log_capture_event", func(ctx context.Context) error {
		return uc.Events.Append(ctx, entity.NewConversionEvent(lead.ID, "lead_captured", nil, nil, now))
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to arm welcome sequence: " + err.Error(),
		}
	}

	log.Printf("🌱 lead captured: %s (source=%s)", lead.Email, input.Source)
	return lead, nil
}

// TriggerWelcomeSequence arms the five welcome emails for a lead, in
// sequence order, each as a durable scheduled row. Re-arming is harmless:
// the (lead_id, template_type) dedupe drops repeats.
func (uc *CaptureLeadUseCase) TriggerWelcomeSequence(ctx context.Context, leadID string) error {
	for _, step := range WelcomeSequence {
		if err := uc.scheduleEmail(ctx, leadID, step.Subject, step.TemplateType, step.DelayDays); err != nil {
			return err
		}
	}
	return nil
}

func (uc *CaptureLeadUseCase) scheduleEmail(ctx context.Context, leadID, subject, templateType string, delayDays int) error {
	now := uc.Now()
	fireAt := now.Add(time.Duration(delayDays) * 24 * time.Hour)
	return uc.Scheduled.Schedule(ctx, entity.NewScheduledEmail(leadID, templateType, subject, fireAt, now))
}
