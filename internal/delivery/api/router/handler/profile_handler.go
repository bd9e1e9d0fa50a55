package handler

import (
	"net/http"

	"companion/internal/delivery/api/middleware"
	"companion/internal/delivery/api/response"
	"companion/internal/domain/entity"
	"companion/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves onboarding and profiles
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// OnboardingRequest represents the request body for finishing onboarding
type OnboardingRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
	Role        string `json:"role" validate:"required,oneof=player pnj"`
}

// PNJProfileRequest represents the bookable details of a companion
type PNJProfileRequest struct {
	HourlyRate int64    `json:"hourly_rate" validate:"required,min=1"`
	Bio        string   `json:"bio" validate:"max=1000"`
	Activities []string `json:"activities" validate:"max=20,dive,required,max=64"`
}

// CompleteOnboarding creates the caller's account with a display name and role
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.profileUC.CompleteOnboarding(c.Request().Context(), userID, middleware.GetEmail(c), &usecase.CompleteOnboardingInput{
		DisplayName: req.DisplayName,
		Role:        entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetMe returns the caller and their companion profile
func (h *ProfileHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	me, err := h.profileUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, me)
}

// UpsertPNJProfile creates or updates the caller's companion profile
func (h *ProfileHandler) UpsertPNJProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PNJProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	profile, err := h.profileUC.UpsertPNJProfile(c.Request().Context(), userID, &usecase.UpsertPNJProfileInput{
		HourlyRate: req.HourlyRate,
		Bio:        req.Bio,
		Activities: req.Activities,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetPNJProfile returns a bookable companion profile
func (h *ProfileHandler) GetPNJProfile(c echo.Context) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetPNJProfile(c.Request().Context(), profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}
