package gamification

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templatesWithIDs(ids ...string) []MissionTemplate {
	templates := make([]MissionTemplate, 0, len(ids))
	for _, id := range ids {
		templates = append(templates, MissionTemplate{ID: id, Period: PeriodDaily, Target: 1})
	}

	return templates
}

func TestSelectTemplates_DistinctAndSized(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	templates := templatesWithIDs("a", "b", "c", "d", "e", "f")

	for range 200 {
		selected := SelectTemplates(rng, templates, 3)
		require.Len(t, selected, 3)

		seen := map[string]bool{}
		for _, tpl := range selected {
			assert.False(t, seen[tpl.ID], "duplicate %s", tpl.ID)
			seen[tpl.ID] = true
		}
	}
}

func TestSelectTemplates_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	templates := templatesWithIDs("a", "b", "c", "d")

	SelectTemplates(rng, templates, 2)

	assert.Equal(t, templatesWithIDs("a", "b", "c", "d"), templates)
}

func TestSelectTemplates_ClampsK(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	templates := templatesWithIDs("a", "b")

	assert.Len(t, SelectTemplates(rng, templates, 5), 2)
	assert.Empty(t, SelectTemplates(rng, templates, -1))
}

func TestSelectTemplates_Uniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	templates := templatesWithIDs("a", "b", "c", "d", "e", "f")

	const draws = 30000
	counts := map[string]int{}
	for range draws {
		for _, tpl := range SelectTemplates(rng, templates, 3) {
			counts[tpl.ID]++
		}
	}

	// Each template is picked with probability 3/6.
	for _, tpl := range templates {
		ratio := float64(counts[tpl.ID]) / draws
		assert.InDelta(t, 0.5, ratio, 0.02, "template %s", tpl.ID)
	}
}

func TestCatalog_Draw(t *testing.T) {
	loc := mustParis(t)
	now := time.Date(2026, 10, 14, 0, 0, 5, 0, loc)
	rng := rand.New(rand.NewPCG(9, 10))
	catalog := DefaultCatalog()

	daily, err := catalog.Draw(PeriodDaily, 3, rng, now, loc)
	require.NoError(t, err)
	weekly, err := catalog.Draw(PeriodWeekly, 2, rng, now, loc)
	require.NoError(t, err)

	require.Len(t, daily, 3)
	require.Len(t, weekly, 2)

	ids := map[string]bool{}
	for _, mission := range append(daily, weekly...) {
		assert.Zero(t, mission.Requirement.Current)
		assert.Positive(t, mission.Requirement.Target)
		assert.False(t, mission.Completed)
		assert.False(t, mission.Claimed)
		assert.True(t, mission.ExpiresAt.After(now))
		assert.Equal(t, now, mission.AssignedAt)
		assert.False(t, ids[mission.ID], "mission ids must be unique")
		ids[mission.ID] = true
	}
	assert.Equal(t, "daily", string(daily[0].Type))
	assert.Equal(t, "weekly", string(weekly[0].Type))
}

func TestCatalog_DrawTooSmall(t *testing.T) {
	catalog := Catalog{Daily: templatesWithIDs("only")}

	_, err := catalog.Draw(PeriodDaily, 3, rand.New(rand.NewPCG(1, 1)), time.Now(), time.UTC)
	assert.ErrorIs(t, err, ErrCatalogTooSmall)
}

func TestDefaultCatalog_Shape(t *testing.T) {
	catalog := DefaultCatalog()

	assert.GreaterOrEqual(t, len(catalog.Daily), 3)
	assert.GreaterOrEqual(t, len(catalog.Weekly), 2)

	ids := map[string]bool{}
	for _, tpl := range append(catalog.Daily, catalog.Weekly...) {
		assert.False(t, ids[tpl.ID], "duplicate template %s", tpl.ID)
		ids[tpl.ID] = true
		assert.Positive(t, tpl.Target)
		assert.Positive(t, tpl.RewardXP)
	}
	for _, tpl := range catalog.Daily {
		assert.Equal(t, PeriodDaily, tpl.Period)
	}
	for _, tpl := range catalog.Weekly {
		assert.Equal(t, PeriodWeekly, tpl.Period)
	}
}
