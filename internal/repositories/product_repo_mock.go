package repositories

import (
	"fmt"
	"strings"
	"sync"

	"tribaltides/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository for tests. Listing preserves insertion order, like a
// relational table's natural order.
type MockProductRepository struct {
	products []models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		nextID: 1,
	}
}

// List returns products matching the filter in insertion order.
func (r *MockProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Product, 0)
	for _, p := range r.products {
		if filter.Category != nil && p.Category != *filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		// Case-folded to match SQL LIKE, which is ASCII
		// case-insensitive on SQLite.
		if filter.Material != nil &&
			!strings.Contains(strings.ToLower(p.Material), strings.ToLower(*filter.Material)) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
}

// Categories returns each distinct category label exactly once.
func (r *MockProductRepository) Categories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// Create adds a new product, assigning an ID when none is set.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products = append(r.products, *product)
	return nil
}

// Replace wipes the catalog and inserts the given products.
func (r *MockProductRepository) Replace(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = nil
	for i := range products {
		if products[i].ID == 0 {
			products[i].ID = r.nextID
		}
		if products[i].ID >= r.nextID {
			r.nextID = products[i].ID + 1
		}
		r.products = append(r.products, products[i])
	}
	return nil
}

// Count returns the number of products.
func (r *MockProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}
