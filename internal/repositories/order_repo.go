package repositories

import (
	"tribaltides/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// immutable after creation; no update operation exists. Delete cascades
// to the order's items and is exposed for administrative use.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	Delete(id uint) error
}
