package entity

import (
	"time"
)

// MissionType is the cadence a mission belongs to.
type MissionType string

const (
	MissionTypeDaily       MissionType = "daily"
	MissionTypeWeekly      MissionType = "weekly"
	MissionTypeAchievement MissionType = "achievement"
)

// RequirementType names the activity a mission counts.
type RequirementType string

const (
	// RequirementCompleteBookings counts completed bookings.
	RequirementCompleteBookings RequirementType = "complete_bookings"
	// RequirementSpendAmount sums booking totals in minor currency units.
	RequirementSpendAmount RequirementType = "spend_amount"
	// RequirementMeetNewPNJ counts first completed bookings with a companion.
	RequirementMeetNewPNJ RequirementType = "meet_new_pnj"
	// RequirementLongSession counts completed bookings of at least LongSessionHours.
	RequirementLongSession RequirementType = "long_session"
)

// LongSessionHours is the minimum duration counted by RequirementLongSession.
const LongSessionHours = 2

// MissionRequirement tracks progress towards a target.
type MissionRequirement struct {
	Type    RequirementType `json:"type"`
	Target  int64           `json:"target"`
	Current int64           `json:"current"`
}

// MissionRewards are granted once, on claim.
type MissionRewards struct {
	XP    int64  `json:"xp"`
	Badge string `json:"badge,omitempty"`
}

// Mission is one assigned instance of a catalog template.
type Mission struct {
	ID          string             `json:"id"`
	TemplateID  string             `json:"template_id"`
	Type        MissionType        `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Requirement MissionRequirement `json:"requirement"`
	Rewards     MissionRewards     `json:"rewards"`
	Completed   bool               `json:"completed"`
	Claimed     bool               `json:"claimed"`
	AssignedAt  time.Time          `json:"assigned_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// IsExpired reports whether the mission can no longer progress.
func (m *Mission) IsExpired(now time.Time) bool {
	return !now.Before(m.ExpiresAt)
}

// Advance adds progress, capping Current at Target. It returns true only when
// this call moved the mission into the completed state.
func (m *Mission) Advance(amount int64, now time.Time) bool {
	if amount <= 0 || m.Completed || m.IsExpired(now) {
		return false
	}

	m.Requirement.Current = min(m.Requirement.Current+amount, m.Requirement.Target)
	if m.Requirement.Current >= m.Requirement.Target {
		m.Completed = true

		return true
	}

	return false
}

// Claimable reports whether the reward can be collected.
func (m *Mission) Claimable() bool {
	return m.Completed && !m.Claimed
}

// UserMissions holds the active mission sets and their last reset times.
type UserMissions struct {
	Daily           []Mission  `json:"daily"`
	Weekly          []Mission  `json:"weekly"`
	DailyLastReset  *time.Time `json:"daily_last_reset,omitempty"`
	WeeklyLastReset *time.Time `json:"weekly_last_reset,omitempty"`
}

// Find returns a pointer into the daily or weekly set for the mission id.
func (um *UserMissions) Find(missionID string) *Mission {
	for i := range um.Daily {
		if um.Daily[i].ID == missionID {
			return &um.Daily[i]
		}
	}
	for i := range um.Weekly {
		if um.Weekly[i].ID == missionID {
			return &um.Weekly[i]
		}
	}

	return nil
}

// Active returns pointers to every mission in both sets.
func (um *UserMissions) Active() []*Mission {
	missions := make([]*Mission, 0, len(um.Daily)+len(um.Weekly))
	for i := range um.Daily {
		missions = append(missions, &um.Daily[i])
	}
	for i := range um.Weekly {
		missions = append(missions, &um.Weekly[i])
	}

	return missions
}
