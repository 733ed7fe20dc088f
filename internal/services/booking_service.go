package services

import (
	"log"

	"tribaltides/internal/models"
	"tribaltides/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CreateBookingInput is the declared schema for a tattoo booking. Date
// and time are opaque strings; they are stored as given, not parsed as
// calendar values.
type CreateBookingInput struct {
	Name  string `json:"name" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Style string `json:"style"`
}

// BookingService handles tattoo-session reservations. Despite the name
// there is no slot-conflict resolution: the same date and time can be
// booked any number of times.
type BookingService struct {
	repo      repositories.BookingRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewBookingService creates a new BookingService. The publisher may be
// nil, which disables booking-created events.
func NewBookingService(repo repositories.BookingRepository, publisher EventPublisher) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// CreateBooking validates the input, persists the booking, and returns
// the new booking ID.
func (s *BookingService) CreateBooking(input CreateBookingInput) (uint, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, &ValidationError{Message: validationMessage(err)}
	}

	booking := &models.Booking{
		Name:  input.Name,
		Date:  input.Date,
		Time:  input.Time,
		Style: input.Style,
	}
	if err := s.repo.Create(booking); err != nil {
		return 0, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"booking_id": booking.ID,
			"date":       booking.Date,
			"time":       booking.Time,
		}
		if err := s.publisher.PublishBookingCreated(event); err != nil {
			log.Printf("Warning: failed to publish booking created event for booking %d: %v", booking.ID, err)
		}
	}

	return booking.ID, nil
}

// ListBookings returns every booking, for the administrative view.
func (s *BookingService) ListBookings() ([]models.Booking, error) {
	return s.repo.GetAll()
}
