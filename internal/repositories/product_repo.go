package repositories

import (
	"errors"

	"tribaltides/internal/models"
)

// ErrNotFound is wrapped into every "no such record" error returned by a
// repository, so callers can test with errors.Is.
var ErrNotFound = errors.New("record not found")

// ProductFilter holds the optional catalog predicates. A nil field imposes
// no constraint; set fields are combined with logical AND.
type ProductFilter struct {
	Category *string  // exact match
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
	Material *string  // substring match
}

// ProductRepository defines the interface for catalog data access.
// Products are never updated or deleted at runtime; Create and Replace
// exist for the seed process only.
type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Categories() ([]string, error)
	Create(product *models.Product) error
	Replace(products []models.Product) error
	Count() (int64, error)
}
