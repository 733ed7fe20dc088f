package repositories

import (
	"sync"
	"time"

	"tribaltides/internal/models"
)

// MockBookingRepository is an in-memory implementation of BookingRepository.
type MockBookingRepository struct {
	bookings []models.Booking
	nextID   uint
	mu       sync.RWMutex

	// CreateErr, when set, makes Create fail without persisting anything.
	CreateErr error
}

// NewMockBookingRepository creates a new instance of MockBookingRepository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		nextID: 1,
	}
}

// Create stores a booking, assigning a new ID.
func (r *MockBookingRepository) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateErr != nil {
		return r.CreateErr
	}

	booking.ID = r.nextID
	r.nextID++
	booking.CreatedAt = time.Now().UTC()
	r.bookings = append(r.bookings, *booking)
	return nil
}

// GetAll returns every booking in insertion order.
func (r *MockBookingRepository) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Booking, len(r.bookings))
	copy(result, r.bookings)
	return result, nil
}
