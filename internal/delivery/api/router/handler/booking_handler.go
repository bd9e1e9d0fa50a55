package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"companion/internal/delivery/api/middleware"
	"companion/internal/delivery/api/response"
	"companion/internal/domain/entity"
	"companion/internal/domain/repository"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// BookingHandler exposes the booking lifecycle to players and companions.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for booking a companion
type CreateBookingRequest struct {
	PNJProfileID  string    `json:"pnj_profile_id" validate:"required,uuid"`
	Activity      string    `json:"activity" validate:"required,max=64"`
	ScheduledAt   time.Time `json:"scheduled_at" validate:"required"`
	DurationHours int       `json:"duration_hours" validate:"required,min=1"`
}

// CancelBookingRequest represents the request body for cancelling a booking
type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// CheckInRequest carries the code the player shows the companion
type CheckInRequest struct {
	Code string `json:"code" validate:"required,numeric"`
}

// CheckInQRRequest carries the raw text of a scanned check-in QR code
type CheckInQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateBooking handles a player's booking request
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, &usecase.CreateBookingInput{
		PNJProfileID:  uuid.MustParse(req.PNJProfileID),
		Activity:      req.Activity,
		ScheduledAt:   req.ScheduledAt,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

// ListBookings lists the caller's bookings, optionally filtered by ?status=a,b
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	filter := repository.BookingFilter{Limit: limit, Offset: offset}
	if raw := c.QueryParam("status"); raw != "" {
		for status := range strings.SplitSeq(raw, ",") {
			filter.Statuses = append(filter.Statuses, entity.BookingStatus(strings.TrimSpace(status)))
		}
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings)
}

// GetBooking returns one booking the caller takes part in
func (h *BookingHandler) GetBooking(c echo.Context) error {
	return h.withBooking(c, h.bookingUC.GetBooking)
}

// AcceptBooking lets the companion accept a pending request
func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	return h.withBooking(c, h.bookingUC.AcceptBooking)
}

// RejectBooking lets the companion decline a pending request
func (h *BookingHandler) RejectBooking(c echo.Context) error {
	return h.withBooking(c, h.bookingUC.RejectBooking)
}

// CompleteBooking ends a paid or ongoing session
func (h *BookingHandler) CompleteBooking(c echo.Context) error {
	return h.withBooking(c, h.bookingUC.CompleteBooking)
}

// CancelBooking cancels a booking that is not paid yet
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), userID, bookingID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// CheckIn starts the session with the code the player presented
func (h *BookingHandler) CheckIn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.CheckIn(c.Request().Context(), userID, bookingID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// CheckInByQR starts the session from a scanned check-in QR code
func (h *BookingHandler) CheckInByQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckInQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.CheckInByQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// CheckInQR renders the player's check-in code
func (h *BookingHandler) CheckInQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.bookingUC.CheckInQR(c.Request().Context(), userID, bookingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}

// StartPayment creates the payment intent of a confirmed booking
func (h *BookingHandler) StartPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	session, err := h.paymentUC.StartPayment(c.Request().Context(), userID, bookingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, session)
}

type bookingAction func(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error)

func (h *BookingHandler) withBooking(c echo.Context, action bookingAction) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := action(c.Request().Context(), userID, bookingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}
