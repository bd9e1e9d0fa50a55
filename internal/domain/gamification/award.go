package gamification

import (
	"companion/internal/domain/entity"
	"companion/internal/errors"
)

// LevelChange is the result of an XP grant.
type LevelChange struct {
	Before int
	After  int
}

// LeveledUp reports whether the grant crossed at least one threshold.
func (c LevelChange) LeveledUp() bool {
	return c.After > c.Before
}

// AwardXP adds amount to both XP counters and recomputes the cached level.
func (t *LevelTable) AwardXP(user *entity.User, amount int64) (LevelChange, error) {
	if amount < 0 {
		return LevelChange{}, errors.Wrapf(ErrNegativeXP, "award=%d", amount)
	}

	before, err := t.LevelFromXP(user.XP)
	if err != nil {
		return LevelChange{}, err
	}

	user.XP += amount
	user.TotalXPEarned += amount

	after, err := t.LevelFromXP(user.XP)
	if err != nil {
		return LevelChange{}, err
	}
	user.Level = after

	return LevelChange{Before: before, After: after}, nil
}
