package services

import (
	"tribaltides/internal/models"
	"tribaltides/internal/repositories"
)

// CatalogService handles product browsing: filtered listing, single-item
// lookup, and the distinct category index.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts returns products matching the filter. Every predicate is
// independently optional; an empty result set is valid.
func (s *CatalogService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}

// GetProduct retrieves a single product by its ID. The error wraps
// repositories.ErrNotFound when no such product exists.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// ListCategories returns every category label present in the catalog,
// each exactly once.
func (s *CatalogService) ListCategories() ([]string, error) {
	return s.repo.Categories()
}
