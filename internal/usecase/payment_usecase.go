package usecase

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/smartcart-labs/smartcart/internal/repo/payments"
)

const defaultCurrency = "usd"

// PaymentUsecase validates a payment request and delegates intent
// creation to the processor. Each call is a single stateless round trip.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type paymentUsecase struct {
	intents payments.IntentCreator
}

func NewPaymentUsecase(intents payments.IntentCreator) PaymentUsecase {
	return &paymentUsecase{intents: intents}
}

func (u *paymentUsecase) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if amountCents <= 0 {
		return "", models.ErrInvalidAmount
	}
	if currency == "" {
		currency = defaultCurrency
	}

	secret, err := u.intents.CreateIntent(ctx, amountCents, currency)
	if err != nil {
		return "", err
	}

	log.Infow(ctx, "payment intent created", "amount_cents", amountCents, "currency", currency)
	return secret, nil
}
