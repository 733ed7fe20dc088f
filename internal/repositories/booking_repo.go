package repositories

import (
	"tribaltides/internal/models"
)

// BookingRepository defines the interface for booking data access.
// Bookings are write-once; no update or delete operation exists.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetAll() ([]models.Booking, error)
}
