package models

// Product represents a catalog item. Products are created by the seed
// process only and are read-only at runtime.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:varchar(200);not null"`
	Category    string  `json:"category" gorm:"type:varchar(100);not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"image_url" gorm:"type:varchar(500)"`
	Material    string  `json:"material" gorm:"type:varchar(200)"`
	Sizes       string  `json:"sizes" gorm:"type:varchar(100)"` // comma-separated size labels
}

// TableName keeps the table name the seed data was written against.
func (Product) TableName() string {
	return "products"
}
