package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/smartcart-labs/smartcart/internal/usecase"
)

type Controller interface {
	Root(c echo.Context) error
	Health(c echo.Context) error
	CreatePaymentIntent(c echo.Context) error
}

type controller struct {
	paymentUsecase usecase.PaymentUsecase
}

func NewController(paymentUsecase usecase.PaymentUsecase) Controller {
	return &controller{
		paymentUsecase: paymentUsecase,
	}
}

func (h *controller) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Stripe payment server running",
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "smartcart",
	})
}

type PaymentIntentRequest struct {
	// Amount is in minor currency units (cents).
	Amount   int64  `json:"amount" validate:"gt=0"`
	Currency string `json:"currency"`
}

func (h *controller) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must be positive")
	}

	ctx := c.Request().Context()
	secret, err := h.paymentUsecase.CreateIntent(ctx, req.Amount, req.Currency)
	if errors.Is(err, models.ErrInvalidAmount) {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must be positive")
	}
	if err != nil {
		// processor message forwarded verbatim
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"clientSecret": secret,
	})
}
