package postgres

import (
	"testing"
	"time"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMapper_PreservesMissionsAndStats(t *testing.T) {
	reset := time.Date(2026, 10, 12, 22, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:                  uuid.New(),
		Email:               "p@example.com",
		DisplayName:         "P",
		Role:                entity.RolePlayer,
		OnboardingCompleted: true,
		XP:                  250,
		Level:               2,
		TotalXPEarned:       300,
		Badges:              []string{"regular"},
		Missions: entity.UserMissions{
			Daily: []entity.Mission{{
				ID:          "m1",
				TemplateID:  "daily_complete_1",
				Type:        entity.MissionTypeDaily,
				Requirement: entity.MissionRequirement{Type: entity.RequirementCompleteBookings, Target: 1, Current: 1},
				Rewards:     entity.MissionRewards{XP: 30},
				Completed:   true,
				ExpiresAt:   reset.Add(24 * time.Hour),
			}},
			DailyLastReset: &reset,
		},
		Stats: entity.PlayerStats{CompletedBookings: 5, CancelledBookings: 1, TotalSpent: 12000, UniquePNJMet: 3},
	}

	got := toUserDomain(fromUserDomain(user))

	require.NotNil(t, got)
	assert.Equal(t, user.Stats, got.Stats)
	assert.Equal(t, user.Badges, got.Badges)
	require.Len(t, got.Missions.Daily, 1)
	assert.Equal(t, user.Missions.Daily[0], got.Missions.Daily[0])
	assert.Empty(t, got.Missions.Weekly)
	assert.Equal(t, &reset, got.Missions.DailyLastReset)
}

func TestBookingMapper_NullablePaymentIntent(t *testing.T) {
	booking := &entity.Booking{ID: uuid.New(), Status: entity.BookingStatusPending}

	m := fromBookingDomain(booking)
	assert.Nil(t, m.PaymentIntentID)

	booking.PaymentIntentID = "pi_123"
	m = fromBookingDomain(booking)
	require.NotNil(t, m.PaymentIntentID)
	assert.Equal(t, "pi_123", toBookingDomain(m).PaymentIntentID)
}

func TestPNJProfileMapper_NilActivitiesBecomeEmpty(t *testing.T) {
	got := toPNJProfileDomain(fromPNJProfileDomain(&entity.PNJProfile{ID: uuid.New(), HourlyRate: 2500}))

	assert.NotNil(t, got.Activities)
	assert.Empty(t, got.StripeAccountID)
}
