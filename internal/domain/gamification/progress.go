package gamification

import (
	"time"

	"companion/internal/domain/entity"
)

// BookingActivity is what a completed booking contributes to mission progress.
type BookingActivity struct {
	Amount        int64
	DurationHours int
	FirstWithPNJ  bool
}

// Contributions converts the activity into progress per requirement type.
func (a BookingActivity) Contributions() map[entity.RequirementType]int64 {
	contributions := map[entity.RequirementType]int64{
		entity.RequirementCompleteBookings: 1,
		entity.RequirementSpendAmount:      a.Amount,
	}
	if a.FirstWithPNJ {
		contributions[entity.RequirementMeetNewPNJ] = 1
	}
	if a.DurationHours >= entity.LongSessionHours {
		contributions[entity.RequirementLongSession] = 1
	}

	return contributions
}

// ApplyProgress advances every active mission matching a contribution and
// returns the missions completed by this call.
func ApplyProgress(missions *entity.UserMissions, contributions map[entity.RequirementType]int64, now time.Time) []entity.Mission {
	var completed []entity.Mission
	for _, mission := range missions.Active() {
		amount, ok := contributions[mission.Requirement.Type]
		if !ok {
			continue
		}
		if mission.Advance(amount, now) {
			completed = append(completed, *mission)
		}
	}

	return completed
}
