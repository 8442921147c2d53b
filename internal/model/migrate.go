package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию таблиц клиентов и броней.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Reservation{},
	)
}
