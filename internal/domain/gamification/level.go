// Package gamification holds the XP, level, title and mission rules.
// Everything here is pure and safe for concurrent use.
package gamification

import (
	"sort"

	"companion/internal/errors"
)

const (
	// DefaultMaxLevel is the number of levels in the default table.
	DefaultMaxLevel = 32
	// DefaultOverflowIncrement extrapolates one more threshold past the last level.
	DefaultOverflowIncrement int64 = 3200
)

var (
	// ErrNegativeXP is returned for XP values below zero.
	ErrNegativeXP = errors.New("xp must not be negative")
	// ErrInvalidThresholds is returned when a level table is not strictly increasing from zero.
	ErrInvalidThresholds = errors.New("invalid level thresholds")
)

// Progress describes where an XP value sits inside its level.
type Progress struct {
	Level      int     `json:"level"`
	Current    int64   `json:"current"`    // XP earned since the level floor.
	Max        int64   `json:"max"`        // XP width of the level.
	Percentage float64 `json:"percentage"` // 100*Current/Max clamped to [0,100].
	ToNext     int64   `json:"to_next"`
}

// LevelTable maps cumulative XP to levels. thresholds[i] is the XP floor of level i+1.
type LevelTable struct {
	thresholds []int64
	overflow   int64
}

// DefaultThresholds returns T[i] = 50*i*(i+1): 0, 100, 300, 600, 1000, ...
func DefaultThresholds() []int64 {
	thresholds := make([]int64, DefaultMaxLevel)
	for i := range thresholds {
		n := int64(i)
		thresholds[i] = 50 * n * (n + 1)
	}

	return thresholds
}

// DefaultLevelTable builds the table used in production.
func DefaultLevelTable() *LevelTable {
	table, err := NewLevelTable(DefaultThresholds(), DefaultOverflowIncrement)
	if err != nil {
		panic(err)
	}

	return table
}

// NewLevelTable validates and copies thresholds.
func NewLevelTable(thresholds []int64, overflowIncrement int64) (*LevelTable, error) {
	if len(thresholds) == 0 || thresholds[0] != 0 {
		return nil, errors.Wrap(ErrInvalidThresholds, "first threshold must be 0")
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, errors.Wrapf(ErrInvalidThresholds, "threshold %d is not greater than threshold %d", i, i-1)
		}
	}
	if overflowIncrement <= 0 {
		return nil, errors.Wrap(ErrInvalidThresholds, "overflow increment must be positive")
	}

	return &LevelTable{
		thresholds: append([]int64(nil), thresholds...),
		overflow:   overflowIncrement,
	}, nil
}

// MaxLevel is the highest reachable level.
func (t *LevelTable) MaxLevel() int {
	return len(t.thresholds)
}

// Floor returns the XP needed to reach level. Levels outside [1, MaxLevel] are clamped.
func (t *LevelTable) Floor(level int) int64 {
	level = min(max(level, 1), t.MaxLevel())

	return t.thresholds[level-1]
}

// ceiling is the XP of the next level, extrapolated past the table.
func (t *LevelTable) ceiling(level int) int64 {
	if level >= t.MaxLevel() {
		return t.thresholds[len(t.thresholds)-1] + t.overflow
	}

	return t.thresholds[level]
}

// LevelFromXP returns the largest i+1 with xp >= T[i], saturating at MaxLevel.
func (t *LevelTable) LevelFromXP(xp int64) (int, error) {
	if xp < 0 {
		return 0, errors.Wrapf(ErrNegativeXP, "xp=%d", xp)
	}

	// Number of thresholds <= xp; T[0] == 0 makes this at least 1.
	return sort.Search(len(t.thresholds), func(i int) bool {
		return t.thresholds[i] > xp
	}), nil
}

// ProgressInLevel locates xp between the floor of its level and the next threshold.
func (t *LevelTable) ProgressInLevel(xp int64) (Progress, error) {
	level, err := t.LevelFromXP(xp)
	if err != nil {
		return Progress{}, err
	}

	floor := t.Floor(level)
	ceiling := t.ceiling(level)
	width := ceiling - floor
	current := xp - floor

	percentage := 100 * float64(current) / float64(width)
	percentage = min(max(percentage, 0), 100)

	return Progress{
		Level:      level,
		Current:    current,
		Max:        width,
		Percentage: percentage,
		ToNext:     max(ceiling-xp, 0),
	}, nil
}

// XPToNextLevel returns the XP still missing for the next threshold.
func (t *LevelTable) XPToNextLevel(xp int64) (int64, error) {
	progress, err := t.ProgressInLevel(xp)
	if err != nil {
		return 0, err
	}

	return progress.ToNext, nil
}
