package usecase

import (
	"github.com/bloomafter40/platform/internal/infra/integration/stripe"
)

// EmailService is the outbound mail collaborator.
type EmailService interface {
	Send(to, subject, htmlBody string) error
}

// PaymentGateway creates payment intents with the card processor.
type PaymentGateway interface {
	CreatePaymentIntent(input stripe.CreateIntentInput) (*stripe.PaymentIntent, error)
}
