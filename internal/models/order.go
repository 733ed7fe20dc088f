package models

import "time"

// OrderItem is a single line of an order. Items are created only as part
// of order creation and are owned exclusively by their order.
type OrderItem struct {
	ID        uint `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint `json:"order_id" gorm:"not null;index"`
	ProductID uint `json:"product_id" gorm:"not null"`
	Quantity  int  `json:"quantity" gorm:"not null;default:1"`
}

// TableName keeps the table name the original schema used.
func (OrderItem) TableName() string {
	return "order_items"
}

// Order is a customer order. TotalPrice is supplied by the caller and is
// not recomputed from the item lines.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName  string      `json:"customer_name" gorm:"type:varchar(200);not null"`
	CustomerEmail string      `json:"customer_email" gorm:"type:varchar(200);not null"`
	Address       string      `json:"address" gorm:"type:text;not null"`
	TotalPrice    float64     `json:"total_price" gorm:"not null"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the table name the original schema used.
func (Order) TableName() string {
	return "orders"
}
