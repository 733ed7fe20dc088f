package handlers

import (
	"errors"
	"log"

	"tribaltides/internal/repositories"
	"tribaltides/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler validates prospective cart lines. The cart itself lives on
// the client; these endpoints only validate and acknowledge.
type CartHandler struct {
	catalog *services.CatalogService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(catalog *services.CatalogService) *CartHandler {
	return &CartHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the cart routes with the Fiber router.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/cart", h.HandleValidateCartItem)
	router.Delete("/cart/:item_id", h.HandleRemoveCartItem)
}

// cartItemRequest is the declared schema for a prospective cart line.
// Quantity is a pointer so that only a missing key gets the default; an
// explicit 0 is echoed back as given.
type cartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

// HandleValidateCartItem checks that the referenced product exists and
// echoes it back with the requested quantity.
func (h *CartHandler) HandleValidateCartItem(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, err := h.catalog.GetProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error validating cart item %d: %v", req.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not validate cart item",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"product": fiber.Map{
			"id":        product.ID,
			"name":      product.Name,
			"price":     product.Price,
			"image_url": product.ImageURL,
		},
		"quantity": quantity,
	})
}

// HandleRemoveCartItem acknowledges a client-side removal. Nothing is
// stored server-side, so this is a no-op kept for API consistency.
func (h *CartHandler) HandleRemoveCartItem(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item removed",
	})
}
