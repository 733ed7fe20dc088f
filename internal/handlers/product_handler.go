package handlers

import (
	"errors"
	"log"
	"strconv"

	"tribaltides/internal/repositories"
	"tribaltides/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
}

// HandleListProducts lists products with optional filters. Absent query
// parameters impose no constraint; present ones are combined with AND.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var filter repositories.ProductFilter

	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	// Unparseable price bounds are treated as absent, never as an error.
	if raw := c.Query("min_price"); raw != "" {
		if minPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &minPrice
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}
	if material := c.Query("material"); material != "" {
		filter.Material = &material
	}

	products, err := h.service.ListProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleGetProduct fetches a single product by ID. Unknown and malformed
// IDs both answer 404, matching the route contract.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	}

	product, err := h.service.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "product not found",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleListCategories returns the distinct category labels.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not retrieve categories",
		})
	}
	return c.JSON(categories)
}
