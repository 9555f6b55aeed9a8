// Package payments wraps the payment processor SDK behind a small
// injectable interface so the usecase layer can be tested with a fake.
package payments

import (
	"context"

	"github.com/smartcart-labs/smartcart/internal/config"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentCreator creates a payment intent with the processor and returns
// the client-side confirmation secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type stripeClient struct {
	api *client.API
}

func NewStripeClient(cfg *config.Config) IntentCreator {
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)
	return &stripeClient{api: api}
}

func (s *stripeClient) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		// the processor's message is surfaced verbatim to the caller
		return "", err
	}
	return intent.ClientSecret, nil
}
