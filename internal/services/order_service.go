package services

import (
	"fmt"
	"log"

	"tribaltides/internal/models"
	"tribaltides/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// OrderItemInput is a single prospective order line. Product existence
// and quantity positivity are caller-trusted and not checked here.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderInput is the declared schema for order creation. All fields
// are required; Items must be present in the payload (an empty list is
// accepted, a missing key is not). TotalPrice is a pointer so that a
// present zero total passes the presence check.
type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name" validate:"required"`
	CustomerEmail string           `json:"customer_email" validate:"required"`
	Address       string           `json:"address" validate:"required"`
	TotalPrice    *float64         `json:"total_price" validate:"required"`
	Items         []OrderItemInput `json:"items" validate:"required"`
}

// OrderService handles the order placement workflow.
type OrderService struct {
	repo      repositories.OrderRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewOrderService creates a new OrderService. The publisher may be nil,
// which disables order-created events.
func NewOrderService(repo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// CreateOrder validates the input and persists the order header together
// with every item as one atomic unit. TotalPrice is stored as supplied;
// it is not cross-checked against the item lines. Returns the new order
// ID on success.
func (s *OrderService) CreateOrder(input CreateOrderInput) (uint, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, &ValidationError{Message: validationMessage(err)}
	}

	order := &models.Order{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Address:       input.Address,
		TotalPrice:    *input.TotalPrice,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.repo.Create(order); err != nil {
		return 0, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"order_id":       order.ID,
			"customer_email": order.CustomerEmail,
			"total_price":    order.TotalPrice,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
		}
	}

	return order.ID, nil
}

// validationMessage flattens a validator error into the single message
// the API reports.
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		return fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag())
	}
	return err.Error()
}
