package model

import "time"

// reservations
type Reservation struct {
	ID int64 `gorm:"primaryKey"`

	// Бронь ссылается на клиента, но не владеет им.
	CustomerID int64 `gorm:"not null;index"`

	NumGuests int       `gorm:"not null"`
	StartAt   time.Time `gorm:"not null"`
	Notes     string    `gorm:"type:text"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
