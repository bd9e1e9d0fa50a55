package gamification

import (
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"
)

// Period is a mission reset cadence.
type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// ErrUnknownPeriod is returned by ParsePeriod.
var ErrUnknownPeriod = errors.New("unknown mission period")

// ParsePeriod accepts "daily" or "weekly".
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly:
		return Period(s), nil
	default:
		return "", errors.Wrapf(ErrUnknownPeriod, "%q", s)
	}
}

// MissionType maps the period to the mission type it assigns.
func (p Period) MissionType() entity.MissionType {
	if p == PeriodWeekly {
		return entity.MissionTypeWeekly
	}

	return entity.MissionTypeDaily
}

// Start is local midnight for daily periods and Monday 00:00 for weekly ones.
func (p Period) Start(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if p == PeriodDaily {
		return midnight
	}

	// time.Weekday starts on Sunday; ISO weeks start on Monday.
	sinceMonday := (int(local.Weekday()) + 6) % 7

	return midnight.AddDate(0, 0, -sinceMonday)
}

// End is the first instant of the next period.
func (p Period) End(now time.Time, loc *time.Location) time.Time {
	start := p.Start(now, loc)
	if p == PeriodDaily {
		return start.AddDate(0, 0, 1)
	}

	return start.AddDate(0, 0, 7)
}

// ExpiresAt is the last representable instant of the period: 23:59:59.999999999
// of the current day, or of the coming Sunday (today when today is Sunday).
func (p Period) ExpiresAt(now time.Time, loc *time.Location) time.Time {
	return p.End(now, loc).Add(-time.Nanosecond)
}

// Contains reports whether t falls inside the period that contains now.
func (p Period) Contains(t, now time.Time, loc *time.Location) bool {
	start := p.Start(now, loc)

	return !t.Before(start) && t.Before(p.End(now, loc))
}

// LastReset returns the reset timestamp for the period from a user's mission state.
func (p Period) LastReset(missions entity.UserMissions) *time.Time {
	if p == PeriodWeekly {
		return missions.WeeklyLastReset
	}

	return missions.DailyLastReset
}

// Replace swaps the mission set of the period and stamps its reset time.
func (p Period) Replace(missions *entity.UserMissions, assigned []entity.Mission, resetAt time.Time) {
	if p == PeriodWeekly {
		missions.Weekly = assigned
		missions.WeeklyLastReset = &resetAt

		return
	}

	missions.Daily = assigned
	missions.DailyLastReset = &resetAt
}
