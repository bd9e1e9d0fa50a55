package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	PlayerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_pair,priority:1"`
	PNJID         uuid.UUID `gorm:"column:pnj_id;type:uuid;not null;index:idx_bookings_pair,priority:2"`
	PNJProfileID  uuid.UUID `gorm:"column:pnj_profile_id;type:uuid;not null"`
	Activity      string    `gorm:"type:varchar(100);not null"`
	ScheduledAt   time.Time `gorm:"not null;index"`
	DurationHours int       `gorm:"not null;check:chk_bookings_duration,duration_hours > 0"`

	HourlyRate  int64  `gorm:"not null"`
	TotalPrice  int64  `gorm:"not null"`
	PlatformFee int64  `gorm:"not null"`
	PNJEarnings int64  `gorm:"column:pnj_earnings;not null"`
	Currency    string `gorm:"type:varchar(3);not null"`

	Status             string     `gorm:"type:varchar(20);not null;index"`
	CancellationReason string     `gorm:"type:varchar(255)"`
	CancelledBy        *uuid.UUID `gorm:"type:uuid"`
	PaymentIntentID    *string    `gorm:"type:varchar(255);uniqueIndex"`
	PaymentError       string     `gorm:"type:text"`
	CheckInCode        string     `gorm:"type:varchar(16);not null"`
	CheckedInAt        *time.Time
	CompletedAt        *time.Time
	RewardedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	PNJProfile *PNJProfileModel `gorm:"foreignKey:PNJProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// TransactionModel mirrors the 'transactions' table, the payment ledger.
// payment_intent_id is unique so webhook redeliveries cannot double count.
type TransactionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentIntentID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PlayerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PNJID           uuid.UUID `gorm:"column:pnj_id;type:uuid;not null;index"`
	Amount          int64     `gorm:"not null"`
	PlatformFee     int64     `gorm:"not null"`
	PNJPayout       int64     `gorm:"column:pnj_payout;not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	TransferID      string    `gorm:"type:varchar(255)"`
	RefundedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Booking *BookingModel `gorm:"foreignKey:BookingID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
