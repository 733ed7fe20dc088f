package handlers

import (
	"errors"
	"log"

	"tribaltides/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order placement.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber router.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandleCreateOrder)
}

// HandleCreateOrder creates an order with its items. Validation failures
// and persistence failures both answer 400 with the raw error message;
// persistence failures have already been rolled back by then.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	orderID, err := h.service.CreateOrder(input)
	if err != nil {
		var ve *services.ValidationError
		if !errors.As(err, &ve) {
			log.Printf("Error creating order: %v", err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"order_id": orderID,
		"message":  "Order created successfully",
	})
}
