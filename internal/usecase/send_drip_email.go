package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
	"github.com/bloomafter40/platform/internal/infra/mail"
)

type SendDripEmailUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Sends     entity.EmailSendRepositoryInterface
	Scheduled entity.ScheduledEmailRepositoryInterface
	Mailer    EmailService
	Now       func() time.Time
}

func NewSendDripEmailUseCase(
	leads entity.LeadRepositoryInterface,
	sends entity.EmailSendRepositoryInterface,
	scheduled entity.ScheduledEmailRepositoryInterface,
	mailer EmailService,
	now func() time.Time,
) *SendDripEmailUseCase {
	if now == nil {
		now = time.Now
	}
	return &SendDripEmailUseCase{
		Leads:     leads,
		Sends:     sends,
		Scheduled: scheduled,
		Mailer:    mailer,
		Now:       now,
	}
}

// SendDrip delivers one claimed drip step. The lead is re-fetched at send
// time: a lead that vanished or converted after the step was armed is a
// silent skip, never an email. A delivery failure marks the row failed and
// returns the error so the queue consumer can dead-letter it.
func (uc *SendDripEmailUseCase) SendDrip(ctx context.Context, scheduledEmailID, leadID, templateType, subject string) error {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			log.Printf("⏭️ drip skipped: lead %s no longer exists", leadID)
			return uc.Scheduled.MarkSkipped(ctx, scheduledEmailID)
		}
		return err
	}

	if lead.Status != entity.LeadStatusActive {
		log.Printf("⏭️ drip skipped: lead %s is %s, not nurturing further", leadID, lead.Status)
		return uc.Scheduled.MarkSkipped(ctx, scheduledEmailID)
	}

	body, err := mail.Render(templateType, mail.TemplateData{
		FirstName:  lead.FirstName,
		LeadMagnet: lead.LeadMagnet,
	})
	if err != nil {
		return err
	}

	if err := uc.Mailer.Send(lead.Email, subject, body); err != nil {
		middleware.RecordDripFailure(templateType)
		if markErr := uc.Scheduled.MarkFailed(ctx, scheduledEmailID); markErr != nil {
			log.Printf("⚠️ drip row %s not marked failed: %v", scheduledEmailID, markErr)
		}
		return err
	}

	now := uc.Now()

	// Log row only on successful delivery; opened/clicked start false.
	if err := uc.Sends.Create(ctx, entity.NewEmailSend(leadID, templateType, subject, now)); err != nil {
		log.Printf("⚠️ email delivered but send log failed for lead %s: %v", leadID, err)
	}

	if err := uc.Scheduled.MarkSent(ctx, scheduledEmailID, now); err != nil {
		log.Printf("⚠️ email delivered but drip row %s not marked sent: %v", scheduledEmailID, err)
	}

	middleware.RecordDripSent(templateType)
	log.Printf("📧 drip sent: lead=%s template=%s", leadID, templateType)
	return nil
}
