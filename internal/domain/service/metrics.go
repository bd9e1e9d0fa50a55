package service

import (
	"time"

	"companion/internal/domain/entity"
)

// MetricsRecorder receives business counters from the usecases.
type MetricsRecorder interface {
	BookingTransition(from, to entity.BookingStatus)
	WebhookEvent(eventType, outcome string)
	RewardGranted(xp int64, leveledUp bool)
	MissionRun(period string, report MissionRunStats, elapsed time.Duration)
	PushDelivered(sent, failed int)
}

// MissionRunStats is the subset of an assignment report that is exported.
type MissionRunStats struct {
	Assigned      int
	Skipped       int
	FailedBatches int
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) BookingTransition(entity.BookingStatus, entity.BookingStatus) {}
func (NopMetrics) WebhookEvent(string, string)                                  {}
func (NopMetrics) RewardGranted(int64, bool)                                    {}
func (NopMetrics) MissionRun(string, MissionRunStats, time.Duration)            {}
func (NopMetrics) PushDelivered(int, int)                                       {}
