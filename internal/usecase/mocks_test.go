package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/integration/stripe"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	args := m.Called(ctx, lead)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkConverted(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockConversionEventRepository
type MockConversionEventRepository struct {
	mock.Mock
}

func (m *MockConversionEventRepository) Append(ctx context.Context, event *entity.ConversionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockConversionEventRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.ConversionEvent, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ConversionEvent), args.Error(1)
}

// MockScheduledEmailRepository
type MockScheduledEmailRepository struct {
	mock.Mock
}

func (m *MockScheduledEmailRepository) Schedule(ctx context.Context, email *entity.ScheduledEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockScheduledEmailRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.ScheduledEmail, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScheduledEmail), args.Error(1)
}

func (m *MockScheduledEmailRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockScheduledEmailRepository) MarkSkipped(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduledEmailRepository) MarkFailed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduledEmailRepository) DeleteByLeadID(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

// MockEmailSendRepository
type MockEmailSendRepository struct {
	mock.Mock
}

func (m *MockEmailSendRepository) Create(ctx context.Context, send *entity.EmailSend) error {
	args := m.Called(ctx, send)
	return args.Error(0)
}

func (m *MockEmailSendRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.EmailSend, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailSend), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

// MockProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) UpsertCompletion(ctx context.Context, progress *entity.CoachingProgress) (bool, error) {
	args := m.Called(ctx, progress)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.CoachingProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CoachingProgress), args.Error(1)
}

func (m *MockProgressRepository) FindResponse(ctx context.Context, userID, moduleID, componentID string) (*entity.CoachingProgress, error) {
	args := m.Called(ctx, userID, moduleID, componentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CoachingProgress), args.Error(1)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentIntent(input stripe.CreateIntentInput) (*stripe.PaymentIntent, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.PaymentIntent), args.Error(1)
}
