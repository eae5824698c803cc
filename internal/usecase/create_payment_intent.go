package usecase

import (
	"context"
	"log"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/integration/stripe"
)

type CreatePaymentIntentInput struct {
	AmountCents int64  `json:"amount_cents"`
	Email       string `json:"email,omitempty"`
	LeadID      string `json:"lead_id,omitempty"`
}

type CreatePaymentIntentOutput struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

type CreatePaymentIntentUseCase struct {
	Gateway PaymentGateway
	Events  entity.ConversionEventRepositoryInterface
	Now     func() time.Time
}

func NewCreatePaymentIntentUseCase(
	gateway PaymentGateway,
	events entity.ConversionEventRepositoryInterface,
	now func() time.Time,
) *CreatePaymentIntentUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreatePaymentIntentUseCase{Gateway: gateway, Events: events, Now: now}
}

func (uc *CreatePaymentIntentUseCase) Execute(ctx context.Context, input CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error) {
	if input.AmountCents <= 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "amount_cents must be positive"}
	}

	intent, err := uc.Gateway.CreatePaymentIntent(stripe.CreateIntentInput{
		AmountCents:  input.AmountCents,
		ReceiptEmail: input.Email,
		LeadID:       input.LeadID,
	})
	if err != nil {
		return nil, &DomainError{
			Code:    "PAYMENT_FAILED",
			Message: "payment processor refused the intent: " + err.Error(),
		}
	}

	// Checkout starts are funnel signal even when they never convert.
	if input.LeadID != "" {
		value := float64(input.AmountCents) / 100.0
		event := entity.NewConversionEvent(input.LeadID, "checkout_started", nil, &value, uc.Now())
		if err := uc.Events.Append(ctx, event); err != nil {
			log.Printf("⚠️ checkout_started event not logged for lead %s: %v", input.LeadID, err)
		}
	}

	return &CreatePaymentIntentOutput{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
