package models

import "time"

// Booking is a tattoo-session reservation. Date and time are stored as
// opaque strings (YYYY-MM-DD / HH:MM by convention) and are not validated
// as calendar values. No slot-conflict check exists: two bookings may
// share the same date and time.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	Date      string    `json:"date" gorm:"type:varchar(50);not null"`
	Time      string    `json:"time" gorm:"type:varchar(50);not null"`
	Style     string    `json:"style" gorm:"type:varchar(200)"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name the original schema used.
func (Booking) TableName() string {
	return "bookings"
}
