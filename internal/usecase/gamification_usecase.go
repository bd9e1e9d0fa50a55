package usecase

import (
	"context"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// PlayerProgress is the XP and level view of a user.
type PlayerProgress struct {
	XP            int64    `json:"xp"`
	TotalXPEarned int64    `json:"total_xp_earned"`
	Level         int      `json:"level"`
	MaxLevel      int      `json:"max_level"`
	Title         string   `json:"title"`
	Current       int64    `json:"current"`
	Max           int64    `json:"max"`
	Percentage    float64  `json:"percentage"`
	XPToNextLevel int64    `json:"xp_to_next_level"`
	Badges        []string `json:"badges"`
}

// ClaimResult describes the reward of a claimed mission.
type ClaimResult struct {
	Mission   entity.Mission `json:"mission"`
	XPAwarded int64          `json:"xp_awarded"`
	Badge     string         `json:"badge,omitempty"`
	Level     int            `json:"level"`
	LeveledUp bool           `json:"leveled_up"`
}

// GamificationUsecase exposes progress and missions to players.
type GamificationUsecase interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (*PlayerProgress, error)
	GetMissions(ctx context.Context, userID uuid.UUID) (*entity.UserMissions, error)
	ClaimMission(ctx context.Context, userID uuid.UUID, missionID string) (*ClaimResult, error)
}
