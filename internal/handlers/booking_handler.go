package handlers

import (
	"log"
	"time"

	"tribaltides/internal/models"
	"tribaltides/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles HTTP requests for tattoo bookings.
type BookingHandler struct {
	service *services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// RegisterRoutes registers the booking routes with the Fiber router.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/book-tattoo", h.HandleCreateBooking)
	router.Get("/bookings", h.HandleListBookings)
}

// HandleCreateBooking creates a tattoo booking.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var input services.CreateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	bookingID, err := h.service.CreateBooking(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"booking_id": bookingID,
		"message":    "Booking created successfully",
	})
}

// bookingResponse mirrors the booking wire shape, with created_at as an
// ISO-8601 string or null.
type bookingResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Style     string  `json:"style"`
	CreatedAt *string `json:"created_at"`
}

// HandleListBookings returns every booking, for the administrative view.
func (h *BookingHandler) HandleListBookings(c *fiber.Ctx) error {
	bookings, err := h.service.ListBookings()
	if err != nil {
		log.Printf("Error listing bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve bookings",
		})
	}

	result := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, toBookingResponse(b))
	}
	return c.JSON(result)
}

func toBookingResponse(b models.Booking) bookingResponse {
	resp := bookingResponse{
		ID:    b.ID,
		Name:  b.Name,
		Date:  b.Date,
		Time:  b.Time,
		Style: b.Style,
	}
	if !b.CreatedAt.IsZero() {
		created := b.CreatedAt.UTC().Format(time.RFC3339)
		resp.CreatedAt = &created
	}
	return resp
}
