// Package model holds the GORM persistence models.
package model

// All lists every persisted model in dependency order. Used by schema
// migration and by the query generator.
func All() []any {
	return []any{
		&UserModel{},
		&PNJProfileModel{},
		&BookingModel{},
		&TransactionModel{},
		&NotificationModel{},
		&UserDeviceModel{},
	}
}
