package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/mail"
)

func activeLead() *entity.Lead {
	return &entity.Lead{
		ID:         "lead-123",
		Email:      "ana@example.com",
		FirstName:  "Ana",
		Source:     "quiz",
		LeadMagnet: "Midlife Reset Guide",
		Status:     entity.LeadStatusActive,
	}
}

func TestSendDripDeliversToActiveLead(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockSends := new(MockEmailSendRepository)
	mockScheduled := new(MockScheduledEmailRepository)
	mockMailer := new(MockEmailService)

	now := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	mockLeads.On("FindByID", mock.Anything, "lead-123").Return(activeLead(), nil)
	mockMailer.On("Send", "ana@example.com", "subject", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Ana")
	})).Return(nil)
	mockSends.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.EmailSend) bool {
		return s.LeadID == "lead-123" && !s.Opened && !s.Clicked && s.SentAt.Equal(now)
	})).Return(nil)
	mockScheduled.On("MarkSent", mock.Anything, "sched-1", now).Return(nil)

	uc := NewSendDripEmailUseCase(mockLeads, mockSends, mockScheduled, mockMailer, fixedClock(now))

	err := uc.SendDrip(context.Background(), "sched-1", "lead-123", mail.TemplateAssessmentReminder, "subject")

	assert.NoError(t, err)
	mockMailer.AssertExpectations(t)
	mockSends.AssertExpectations(t)
	mockScheduled.AssertExpectations(t)
}

func TestSendDripSkipsConvertedLead(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockSends := new(MockEmailSendRepository)
	mockScheduled := new(MockScheduledEmailRepository)
	mockMailer := new(MockEmailService)

	converted := activeLead()
	converted.Status = entity.LeadStatusConverted

	mockLeads.On("FindByID", mock.Anything, "lead-123").Return(converted, nil)
	mockScheduled.On("MarkSkipped", mock.Anything, "sched-1").Return(nil)

	uc := NewSendDripEmailUseCase(mockLeads, mockSends, mockScheduled, mockMailer, nil)

	// The timer was armed while the lead was still active; conversion in
	// the meantime means no email goes out.
	err := uc.SendDrip(context.Background(), "sched-1", "lead-123", mail.TemplateSoftPitch, "subject")

	assert.NoError(t, err)
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	mockSends.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockScheduled.AssertCalled(t, "MarkSkipped", mock.Anything, "sched-1")
}

func TestSendDripSkipsVanishedLead(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockScheduled := new(MockScheduledEmailRepository)
	mockMailer := new(MockEmailService)

	mockLeads.On("FindByID", mock.Anything, "lead-404").Return(nil, entity.ErrLeadNotFound)
	mockScheduled.On("MarkSkipped", mock.Anything, "sched-1").Return(nil)

	uc := NewSendDripEmailUseCase(mockLeads, new(MockEmailSendRepository), mockScheduled, mockMailer, nil)

	err := uc.SendDrip(context.Background(), "sched-1", "lead-404", mail.TemplateSoftPitch, "subject")

	assert.NoError(t, err)
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendDripFailureMarksFailedAndReturnsError(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockSends := new(MockEmailSendRepository)
	mockScheduled := new(MockScheduledEmailRepository)
	mockMailer := new(MockEmailService)

	mockLeads.On("FindByID", mock.Anything, "lead-123").Return(activeLead(), nil)
	mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp refused"))
	mockScheduled.On("MarkFailed", mock.Anything, "sched-1").Return(nil)

	uc := NewSendDripEmailUseCase(mockLeads, mockSends, mockScheduled, mockMailer, nil)

	err := uc.SendDrip(context.Background(), "sched-1", "lead-123", mail.TemplateLeadMagnetDelivery, "subject")

	assert.Error(t, err)
	// No send log on failure.
	mockSends.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockScheduled.AssertCalled(t, "MarkFailed", mock.Anything, "sched-1")
}

func TestSendDripUnknownTemplateFallsBack(t *testing.T) {
	mockLeads := new(MockLeadRepository)
	mockSends := new(MockEmailSendRepository)
	mockScheduled := new(MockScheduledEmailRepository)
	mockMailer := new(MockEmailService)

	mockLeads.On("FindByID", mock.Anything, "lead-123").Return(activeLead(), nil)
	// Unknown type renders the first template (lead magnet delivery).
	mockMailer.On("Send", "ana@example.com", "subject", mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Midlife Reset Guide")
	})).Return(nil)
	mockSends.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockScheduled.On("MarkSent", mock.Anything, "sched-1", mock.Anything).Return(nil)

	uc := NewSendDripEmailUseCase(mockLeads, mockSends, mockScheduled, mockMailer, nil)

	err := uc.SendDrip(context.Background(), "sched-1", "lead-123", "noSuchTemplate", "subject")

	assert.NoError(t, err)
	mockMailer.AssertExpectations(t)
}
