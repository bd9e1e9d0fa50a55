package handler

import (
	"io"
	"log/slog"
	"net/http"

	"companion/internal/delivery/api/middleware"
	"companion/internal/delivery/api/response"
	deliverycontext "companion/internal/delivery/context"
	"companion/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const stripeSignatureHeader = "Stripe-Signature"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payout onboarding and the provider webhook.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreateConnectedAccount returns an onboarding link for the companion's payout account
func (h *PaymentHandler) CreateConnectedAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	account, err := h.paymentUC.CreateConnectedAccount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, account)
}

// HandleStripeWebhook verifies and applies one Stripe event. The signature covers
// the exact bytes received, so the body is read raw instead of bound.
func (h *PaymentHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read webhook body")
	}

	result, err := h.paymentUC.HandleWebhook(c.Request().Context(), payload, c.Request().Header.Get(stripeSignatureHeader))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Stripe webhook handled",
		slog.String("eventID", result.EventID),
		slog.String("type", result.Type),
		slog.String("outcome", result.Outcome),
	)

	return response.Success(c, http.StatusOK, result)
}
