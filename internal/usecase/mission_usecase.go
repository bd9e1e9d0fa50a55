package usecase

import (
	"context"
	"time"

	"companion/internal/domain/gamification"
)

// AssignmentReport summarises one mission assignment run.
type AssignmentReport struct {
	Period        gamification.Period `json:"period"`
	Eligible      int                 `json:"eligible"`
	Assigned      int                 `json:"assigned"`
	Skipped       int                 `json:"skipped"`
	FailedBatches int                 `json:"failed_batches"`
	StartedAt     time.Time           `json:"started_at"`
	Duration      time.Duration       `json:"duration"`
}

// MissionUsecase assigns periodic missions to every onboarded user.
type MissionUsecase interface {
	// AssignMissions replaces the period's missions of every eligible user.
	// Users already reset in the current period are skipped unless force is set.
	// The report is returned even when some batches failed.
	AssignMissions(ctx context.Context, period gamification.Period, force bool) (*AssignmentReport, error)
}
