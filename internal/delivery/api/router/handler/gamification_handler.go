package handler

import (
	"net/http"

	"companion/internal/delivery/api/middleware"
	"companion/internal/delivery/api/response"
	"companion/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GamificationHandlerParams holds dependencies for GamificationHandler, injected by Fx.
type GamificationHandlerParams struct {
	fx.In

	GamificationUC usecase.GamificationUsecase
}

// GamificationHandler serves the caller's level, missions and claims.
type GamificationHandler struct {
	gamificationUC usecase.GamificationUsecase
}

// NewGamificationHandler is the constructor for GamificationHandler
func NewGamificationHandler(params GamificationHandlerParams) *GamificationHandler {
	return &GamificationHandler{gamificationUC: params.GamificationUC}
}

// GetProgress returns XP, level, title and badges
func (h *GamificationHandler) GetProgress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	progress, err := h.gamificationUC.GetProgress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// GetMissions returns the current daily and weekly missions
func (h *GamificationHandler) GetMissions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	missions, err := h.gamificationUC.GetMissions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, missions)
}

// ClaimMission collects the reward of a completed mission
func (h *GamificationHandler) ClaimMission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	missionID := c.Param("missionId")
	if missionID == "" {
		return response.BadRequest(c, "INVALID_ID", "Mission ID is required")
	}

	result, err := h.gamificationUC.ClaimMission(c.Request().Context(), userID, missionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
