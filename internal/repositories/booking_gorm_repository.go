package repositories

import (
	"fmt"

	"tribaltides/internal/models"

	"gorm.io/gorm"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// Create persists a booking. No uniqueness or slot-conflict check is
// performed; double-booking the same date and time is allowed.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetAll retrieves every booking in the store's natural order.
func (r *GORMBookingRepository) GetAll() ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := r.db.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
