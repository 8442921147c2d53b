package model

// customers
type Customer struct {
	ID int64 `gorm:"primaryKey"`

	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(32)"`

	Notes string `gorm:"type:text"`
}
