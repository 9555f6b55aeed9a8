package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntentCreator struct {
	secret string
	err    error

	calls       int
	gotAmount   int64
	gotCurrency string
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	f.calls++
	f.gotAmount = amountCents
	f.gotCurrency = currency
	return f.secret, f.err
}

func TestCreateIntent(t *testing.T) {
	processor := &fakeIntentCreator{secret: "pi_123_secret_abc"}
	u := NewPaymentUsecase(processor)

	secret, err := u.CreateIntent(context.Background(), 500, "eur")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
	assert.Equal(t, int64(500), processor.gotAmount)
	assert.Equal(t, "eur", processor.gotCurrency)
}

func TestCreateIntentDefaultCurrency(t *testing.T) {
	processor := &fakeIntentCreator{secret: "pi_123_secret_abc"}
	u := NewPaymentUsecase(processor)

	_, err := u.CreateIntent(context.Background(), 500, "")
	require.NoError(t, err)
	assert.Equal(t, "usd", processor.gotCurrency)
}

func TestCreateIntentRejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []int64{0, -5} {
		processor := &fakeIntentCreator{}
		u := NewPaymentUsecase(processor)

		_, err := u.CreateIntent(context.Background(), amount, "usd")
		assert.ErrorIs(t, err, models.ErrInvalidAmount)
		assert.Zero(t, processor.calls, "processor must not be called for amount %d", amount)
	}
}

func TestCreateIntentForwardsProcessorErrors(t *testing.T) {
	boom := errors.New("Your card was declined.")
	u := NewPaymentUsecase(&fakeIntentCreator{err: boom})

	_, err := u.CreateIntent(context.Background(), 500, "usd")
	assert.ErrorIs(t, err, boom)
}
