package gamification

import (
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

// ErrCatalogTooSmall is returned when a period has fewer templates than missions to draw.
var ErrCatalogTooSmall = errors.New("mission catalog has fewer templates than requested")

// MissionTemplate is a catalog entry instantiated into user missions.
type MissionTemplate struct {
	ID          string
	Period      Period
	Title       string
	Description string
	Requirement entity.RequirementType
	Target      int64
	RewardXP    int64
	RewardBadge string
}

// Instantiate creates a fresh mission with zero progress.
func (tpl MissionTemplate) Instantiate(assignedAt, expiresAt time.Time) entity.Mission {
	return entity.Mission{
		ID:          uuid.NewString(),
		TemplateID:  tpl.ID,
		Type:        tpl.Period.MissionType(),
		Title:       tpl.Title,
		Description: tpl.Description,
		Requirement: entity.MissionRequirement{
			Type:   tpl.Requirement,
			Target: tpl.Target,
		},
		Rewards: entity.MissionRewards{
			XP:    tpl.RewardXP,
			Badge: tpl.RewardBadge,
		},
		AssignedAt: assignedAt,
		ExpiresAt:  expiresAt,
	}
}

// Catalog holds the templates per period.
type Catalog struct {
	Daily  []MissionTemplate
	Weekly []MissionTemplate
}

// Templates returns the templates of a period.
func (c Catalog) Templates(period Period) []MissionTemplate {
	if period == PeriodWeekly {
		return c.Weekly
	}

	return c.Daily
}

// Draw picks k distinct templates uniformly at random and instantiates them
// with an expiry at the end of the current period in loc.
func (c Catalog) Draw(period Period, k int, rng Rand, now time.Time, loc *time.Location) ([]entity.Mission, error) {
	templates := c.Templates(period)
	if len(templates) < k {
		return nil, errors.Wrapf(ErrCatalogTooSmall, "%s: have %d, need %d", period, len(templates), k)
	}

	expiresAt := period.ExpiresAt(now, loc)
	selected := SelectTemplates(rng, templates, k)

	missions := make([]entity.Mission, 0, len(selected))
	for _, tpl := range selected {
		missions = append(missions, tpl.Instantiate(now, expiresAt))
	}

	return missions, nil
}

// DefaultCatalog is the production mission catalog. Amounts are in minor currency units.
func DefaultCatalog() Catalog {
	return Catalog{
		Daily: []MissionTemplate{
			{
				ID: "daily_complete_1", Period: PeriodDaily,
				Title: "Out and about", Description: "Complete a booking today",
				Requirement: entity.RequirementCompleteBookings, Target: 1, RewardXP: 20,
			},
			{
				ID: "daily_complete_2", Period: PeriodDaily,
				Title: "Double feature", Description: "Complete two bookings today",
				Requirement: entity.RequirementCompleteBookings, Target: 2, RewardXP: 40,
			},
			{
				ID: "daily_meet_new", Period: PeriodDaily,
				Title: "New face", Description: "Complete a booking with a companion you have never met",
				Requirement: entity.RequirementMeetNewPNJ, Target: 1, RewardXP: 30,
			},
			{
				ID: "daily_long_session", Period: PeriodDaily,
				Title: "Take your time", Description: "Complete a booking of two hours or more",
				Requirement: entity.RequirementLongSession, Target: 1, RewardXP: 25,
			},
			{
				ID: "daily_spend_20", Period: PeriodDaily,
				Title: "Treat yourself", Description: "Spend 20 on completed bookings today",
				Requirement: entity.RequirementSpendAmount, Target: 2000, RewardXP: 15,
			},
			{
				ID: "daily_spend_50", Period: PeriodDaily,
				Title: "Big day out", Description: "Spend 50 on completed bookings today",
				Requirement: entity.RequirementSpendAmount, Target: 5000, RewardXP: 35,
			},
		},
		Weekly: []MissionTemplate{
			{
				ID: "weekly_complete_5", Period: PeriodWeekly,
				Title: "Regular", Description: "Complete five bookings this week",
				Requirement: entity.RequirementCompleteBookings, Target: 5, RewardXP: 150, RewardBadge: "regular",
			},
			{
				ID: "weekly_meet_3", Period: PeriodWeekly,
				Title: "Social butterfly", Description: "Meet three new companions this week",
				Requirement: entity.RequirementMeetNewPNJ, Target: 3, RewardXP: 120, RewardBadge: "social_butterfly",
			},
			{
				ID: "weekly_spend_200", Period: PeriodWeekly,
				Title: "Patron", Description: "Spend 200 on completed bookings this week",
				Requirement: entity.RequirementSpendAmount, Target: 20000, RewardXP: 100,
			},
			{
				ID: "weekly_long_3", Period: PeriodWeekly,
				Title: "Marathon", Description: "Complete three bookings of two hours or more this week",
				Requirement: entity.RequirementLongSession, Target: 3, RewardXP: 130,
			},
		},
	}
}
