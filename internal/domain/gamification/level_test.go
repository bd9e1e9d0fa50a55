package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThresholds(t *testing.T) {
	thresholds := DefaultThresholds()

	require.Len(t, thresholds, DefaultMaxLevel)
	assert.Equal(t, []int64{0, 100, 300, 600, 1000, 1500}, thresholds[:6])
	assert.EqualValues(t, 49600, thresholds[DefaultMaxLevel-1])
}

func TestNewLevelTable_Validation(t *testing.T) {
	tests := []struct {
		name       string
		thresholds []int64
		overflow   int64
		wantErr    bool
	}{
		{"valid", []int64{0, 10, 30}, 20, false},
		{"empty", nil, 20, true},
		{"first not zero", []int64{5, 10}, 20, true},
		{"not increasing", []int64{0, 10, 10}, 20, true},
		{"decreasing", []int64{0, 10, 5}, 20, true},
		{"zero overflow", []int64{0, 10}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewLevelTable(tt.thresholds, tt.overflow)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidThresholds)
				assert.Nil(t, table)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.thresholds), table.MaxLevel())
		})
	}
}

func TestLevelFromXP_Boundaries(t *testing.T) {
	table := DefaultLevelTable()

	for i, threshold := range DefaultThresholds() {
		level, err := table.LevelFromXP(threshold)
		require.NoError(t, err)
		assert.Equal(t, i+1, level, "at threshold %d", threshold)

		if threshold > 0 {
			below, err := table.LevelFromXP(threshold - 1)
			require.NoError(t, err)
			assert.Equal(t, i, below, "just below threshold %d", threshold)
		}
	}
}

func TestLevelFromXP_Monotonic(t *testing.T) {
	table := DefaultLevelTable()

	previous := 0
	for xp := int64(0); xp <= 60000; xp += 7 {
		level, err := table.LevelFromXP(xp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, level, previous)
		previous = level
	}
}

func TestLevelFromXP_SaturatesAtMaxLevel(t *testing.T) {
	table := DefaultLevelTable()

	level, err := table.LevelFromXP(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxLevel, level)
}

func TestLevelFromXP_RejectsNegative(t *testing.T) {
	table := DefaultLevelTable()

	_, err := table.LevelFromXP(-1)
	assert.ErrorIs(t, err, ErrNegativeXP)

	_, err = table.ProgressInLevel(-50)
	assert.ErrorIs(t, err, ErrNegativeXP)
}

func TestProgressInLevel(t *testing.T) {
	table := DefaultLevelTable()

	tests := []struct {
		name       string
		xp         int64
		level      int
		current    int64
		max        int64
		percentage float64
		toNext     int64
	}{
		{"zero xp", 0, 1, 0, 100, 0, 100},
		{"mid level 1", 50, 1, 50, 100, 50, 50},
		{"floor of level 2", 100, 2, 0, 200, 0, 200},
		{"five bookings", 250, 2, 150, 200, 75, 50},
		{"floor of level 3", 300, 3, 0, 300, 0, 300},
		{"floor of max level", 49600, 32, 0, 3200, 0, 3200},
		{"inside overflow", 51200, 32, 1600, 3200, 50, 1600},
		{"beyond overflow", 60000, 32, 10400, 3200, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, err := table.ProgressInLevel(tt.xp)
			require.NoError(t, err)
			assert.Equal(t, tt.level, progress.Level)
			assert.Equal(t, tt.current, progress.Current)
			assert.Equal(t, tt.max, progress.Max)
			assert.InDelta(t, tt.percentage, progress.Percentage, 0.0001)
			assert.Equal(t, tt.toNext, progress.ToNext)
		})
	}
}

func TestProgressInLevel_PercentageAlwaysInRange(t *testing.T) {
	table := DefaultLevelTable()

	for xp := int64(0); xp <= 70000; xp += 13 {
		progress, err := table.ProgressInLevel(xp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, progress.Percentage, 0.0)
		assert.LessOrEqual(t, progress.Percentage, 100.0)
	}

	for level := 1; level <= table.MaxLevel(); level++ {
		progress, err := table.ProgressInLevel(table.Floor(level))
		require.NoError(t, err)
		assert.Zero(t, progress.Percentage, "level %d floor", level)
	}
}

func TestXPToNextLevel(t *testing.T) {
	table := DefaultLevelTable()

	remaining, err := table.XPToNextLevel(950)
	require.NoError(t, err)
	assert.EqualValues(t, 50, remaining)
}
