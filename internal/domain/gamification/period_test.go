package gamification

import (
	"testing"
	"time"

	"companion/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParis(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	return loc
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("daily")
	require.NoError(t, err)
	assert.Equal(t, PeriodDaily, p)

	p, err = ParsePeriod("weekly")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeekly, p)

	_, err = ParsePeriod("monthly")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestPeriod_DailyBounds(t *testing.T) {
	loc := mustParis(t)
	// 2026-10-14 is a Wednesday.
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 10, 14, 0, 0, 0, 0, loc), PeriodDaily.Start(now, loc))

	expires := PeriodDaily.ExpiresAt(now, loc)
	assert.Equal(t, 2026, expires.Year())
	assert.Equal(t, time.October, expires.Month())
	assert.Equal(t, 14, expires.Day())
	assert.Equal(t, 23, expires.Hour())
	assert.Equal(t, 59, expires.Minute())
	assert.Equal(t, 59, expires.Second())
}

func TestPeriod_WeeklyBounds(t *testing.T) {
	loc := mustParis(t)

	tests := []struct {
		name       string
		now        time.Time
		wantStart  time.Time
		wantExpDay int
	}{
		{"monday", time.Date(2026, 10, 12, 0, 0, 1, 0, loc), time.Date(2026, 10, 12, 0, 0, 0, 0, loc), 18},
		{"wednesday", time.Date(2026, 10, 14, 12, 0, 0, 0, loc), time.Date(2026, 10, 12, 0, 0, 0, 0, loc), 18},
		{"sunday is its own week end", time.Date(2026, 10, 18, 22, 0, 0, 0, loc), time.Date(2026, 10, 12, 0, 0, 0, 0, loc), 18},
		{"week with dst change", time.Date(2026, 10, 21, 8, 0, 0, 0, loc), time.Date(2026, 10, 19, 0, 0, 0, 0, loc), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.wantStart.Equal(PeriodWeekly.Start(tt.now, loc)))

			expires := PeriodWeekly.ExpiresAt(tt.now, loc).In(loc)
			assert.Equal(t, time.Sunday, expires.Weekday())
			assert.Equal(t, tt.wantExpDay, expires.Day())
			assert.Equal(t, 23, expires.Hour())
			assert.Equal(t, 59, expires.Minute())
			assert.Equal(t, 59, expires.Second())
			assert.True(t, expires.After(tt.now))
		})
	}
}

func TestPeriod_ExpiryStrictlyInFuture(t *testing.T) {
	loc := mustParis(t)
	lastSecond := time.Date(2026, 10, 18, 23, 59, 59, 0, loc)

	assert.True(t, PeriodDaily.ExpiresAt(lastSecond, loc).After(lastSecond))
	assert.True(t, PeriodWeekly.ExpiresAt(lastSecond, loc).After(lastSecond))
}

func TestPeriod_Contains(t *testing.T) {
	loc := mustParis(t)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, loc)

	assert.True(t, PeriodDaily.Contains(time.Date(2026, 10, 14, 0, 0, 0, 0, loc), now, loc))
	assert.False(t, PeriodDaily.Contains(time.Date(2026, 10, 13, 23, 59, 0, 0, loc), now, loc))
	assert.True(t, PeriodWeekly.Contains(time.Date(2026, 10, 12, 6, 0, 0, 0, loc), now, loc))
	assert.False(t, PeriodWeekly.Contains(time.Date(2026, 10, 11, 23, 0, 0, 0, loc), now, loc))
}

func TestPeriod_Replace(t *testing.T) {
	resetAt := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	missions := entity.UserMissions{
		Daily:  []entity.Mission{{ID: "old"}},
		Weekly: []entity.Mission{{ID: "keep"}},
	}

	PeriodDaily.Replace(&missions, []entity.Mission{{ID: "new-1"}, {ID: "new-2"}}, resetAt)

	require.Len(t, missions.Daily, 2)
	assert.Equal(t, "new-1", missions.Daily[0].ID)
	assert.Equal(t, "keep", missions.Weekly[0].ID)
	require.NotNil(t, missions.DailyLastReset)
	assert.Equal(t, resetAt, *missions.DailyLastReset)
	assert.Nil(t, missions.WeeklyLastReset)
	assert.Equal(t, missions.DailyLastReset, PeriodDaily.LastReset(missions))
}
