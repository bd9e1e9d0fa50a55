package gamification

import (
	"testing"
	"time"

	"companion/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardXP_FiveCompletedBookings(t *testing.T) {
	table := DefaultLevelTable()
	user := &entity.User{Level: 1}

	for range 5 {
		_, err := table.AwardXP(user, 50)
		require.NoError(t, err)
	}

	assert.EqualValues(t, 250, user.XP)
	assert.EqualValues(t, 250, user.TotalXPEarned)
	assert.Equal(t, 2, user.Level)
	assert.Equal(t, "Noob", TitleForLevel(user.Level))
}

func TestAwardXP_ReportsLevelUp(t *testing.T) {
	table := DefaultLevelTable()
	user := &entity.User{XP: 80, TotalXPEarned: 80, Level: 1}

	change, err := table.AwardXP(user, 50)
	require.NoError(t, err)
	assert.True(t, change.LeveledUp())
	assert.Equal(t, 1, change.Before)
	assert.Equal(t, 2, change.After)

	change, err = table.AwardXP(user, 50)
	require.NoError(t, err)
	assert.False(t, change.LeveledUp())
}

func TestAwardXP_RejectsNegativeAmount(t *testing.T) {
	table := DefaultLevelTable()
	user := &entity.User{XP: 10}

	_, err := table.AwardXP(user, -5)
	assert.ErrorIs(t, err, ErrNegativeXP)
	assert.EqualValues(t, 10, user.XP)
}

func TestApplyProgress(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	later := now.Add(12 * time.Hour)
	missions := entity.UserMissions{
		Daily: []entity.Mission{
			{ID: "complete", Requirement: entity.MissionRequirement{Type: entity.RequirementCompleteBookings, Target: 1}, ExpiresAt: later},
			{ID: "spend", Requirement: entity.MissionRequirement{Type: entity.RequirementSpendAmount, Target: 5000, Current: 1000}, ExpiresAt: later},
			{ID: "expired", Requirement: entity.MissionRequirement{Type: entity.RequirementCompleteBookings, Target: 1}, ExpiresAt: now},
		},
		Weekly: []entity.Mission{
			{ID: "meet", Requirement: entity.MissionRequirement{Type: entity.RequirementMeetNewPNJ, Target: 3}, ExpiresAt: later},
			{ID: "long", Requirement: entity.MissionRequirement{Type: entity.RequirementLongSession, Target: 1}, ExpiresAt: later},
		},
	}

	activity := BookingActivity{Amount: 6000, DurationHours: 1, FirstWithPNJ: true}
	completed := ApplyProgress(&missions, activity.Contributions(), now)

	require.Len(t, completed, 2)
	assert.Equal(t, "complete", completed[0].ID)
	assert.Equal(t, "spend", completed[1].ID)

	assert.EqualValues(t, 5000, missions.Daily[1].Requirement.Current, "progress is capped at target")
	assert.False(t, missions.Daily[2].Completed, "expired missions do not progress")
	assert.EqualValues(t, 1, missions.Weekly[0].Requirement.Current)
	assert.Zero(t, missions.Weekly[1].Requirement.Current, "short bookings do not count as long sessions")
}
