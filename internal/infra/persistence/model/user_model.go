package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The id is the subject of the access
// token, so it is supplied by the application rather than generated.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName         string    `gorm:"type:varchar(100);not null"`
	Role                string    `gorm:"type:varchar(20);not null;index"`
	OnboardingCompleted bool      `gorm:"not null;default:false;index"`

	XP            int64                                `gorm:"not null;default:0;check:chk_users_xp,xp >= 0"`
	Level         int                                  `gorm:"not null;default:1"`
	TotalXPEarned int64                                `gorm:"not null;default:0"`
	Badges        datatypes.JSONSlice[string]          `gorm:"type:jsonb;not null;default:'[]'"`
	Missions      datatypes.JSONType[MissionsDocument] `gorm:"type:jsonb;not null;default:'{}'"`

	Stats PlayerStatsColumns `gorm:"embedded;embeddedPrefix:stat_"`

	StripeCustomerID string `gorm:"type:varchar(255)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PlayerStatsColumns is stored inline on the users row as stat_* columns.
type PlayerStatsColumns struct {
	CompletedBookings int   `gorm:"not null;default:0"`
	CancelledBookings int   `gorm:"not null;default:0"`
	TotalSpent        int64 `gorm:"not null;default:0"`
	UniquePNJMet      int   `gorm:"column:unique_pnj_met;not null;default:0"`
}

// MissionsDocument is the JSON shape of users.missions.
type MissionsDocument struct {
	Daily           []MissionDocument `json:"daily"`
	Weekly          []MissionDocument `json:"weekly"`
	DailyLastReset  *time.Time        `json:"dailyLastReset,omitempty"`
	WeeklyLastReset *time.Time        `json:"weeklyLastReset,omitempty"`
}

// MissionDocument is a single assigned mission instance.
type MissionDocument struct {
	ID          string    `json:"id"`
	TemplateID  string    `json:"templateId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Requirement struct {
		Type    string `json:"type"`
		Target  int64  `json:"target"`
		Current int64  `json:"current"`
	} `json:"requirement"`
	Rewards struct {
		XP    int64  `json:"xp"`
		Badge string `json:"badge,omitempty"`
	} `json:"rewards"`
	Completed  bool      `json:"completed"`
	Claimed    bool      `json:"claimed"`
	AssignedAt time.Time `json:"assignedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// PNJProfileModel mirrors the 'pnj_profiles' table. One profile per user.
type PNJProfileModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	HourlyRate        int64                       `gorm:"not null;check:chk_pnj_profiles_rate,hourly_rate > 0"`
	Bio               string                      `gorm:"type:text"`
	Activities        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CompletedBookings int                         `gorm:"not null;default:0"`
	StripeAccountID   *string                     `gorm:"type:varchar(255);uniqueIndex"`
	ChargesEnabled    bool                        `gorm:"not null;default:false"`
	PayoutsEnabled    bool                        `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (PNJProfileModel) TableName() string {
	return "pnj_profiles"
}
