package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the 'notifications' table, the per-user inbox.
type NotificationModel struct {
	ID         uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID                             `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Kind       string                                `gorm:"type:varchar(50);not null"`
	Title      string                                `gorm:"type:varchar(255);not null"`
	Body       string                                `gorm:"type:text;not null"`
	Data       datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	Read       bool                                  `gorm:"not null;default:false"`
	ReadAt     *time.Time
	PushSent   int       `gorm:"not null;default:0"`
	PushFailed int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
