package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Stripe)
	assert.Equal(t, "eur", cfg.Stripe.Currency)
	require.NotNil(t, cfg.Missions)
	assert.Equal(t, 3, cfg.Missions.DailyCount)
	assert.Equal(t, 2, cfg.Missions.WeeklyCount)
	assert.Equal(t, 500, cfg.Missions.BatchSize)
	assert.Equal(t, "Europe/Paris", cfg.Missions.Timezone)
	require.NotNil(t, cfg.Gamification)
	assert.EqualValues(t, 50, cfg.Gamification.BookingCompletionXP)
	assert.Equal(t, 5*time.Minute, cfg.Gamification.RewardSweepInterval)
	assert.Equal(t, 2*time.Minute, cfg.Gamification.RewardSweepGrace)
	assert.Equal(t, 100, cfg.Gamification.RewardSweepBatch)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Missions:     &MissionsConfig{BatchSize: 100, Timezone: "UTC", DailyCron: "30 2 * * *"},
		Gamification: &GamificationConfig{BookingCompletionXP: 75},
	}

	applyDefaults(cfg)

	assert.Equal(t, 100, cfg.Missions.BatchSize)
	assert.Equal(t, "UTC", cfg.Missions.Timezone)
	assert.Equal(t, "30 2 * * *", cfg.Missions.DailyCron)
	assert.EqualValues(t, 75, cfg.Gamification.BookingCompletionXP)
}

func TestMissionsConfig_Location(t *testing.T) {
	loc, err := (&MissionsConfig{Timezone: "Europe/Paris"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", loc.String())

	_, err = (&MissionsConfig{Timezone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}
