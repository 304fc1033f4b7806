package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog item owned by a business. Rows are written by the
// catalog import pipeline; this service only reads them.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	SKU           string    `gorm:"type:text" json:"sku,omitempty"`
	ProductName   string    `gorm:"type:text;not null" json:"product_name"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Price         float64   `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	StockQuantity int       `gorm:"type:integer;not null;default:0" json:"stock_quantity"`
	Category      string    `gorm:"type:text" json:"category,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// BeforeCreate sets UUID before creating
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.StockQuantity > 0
}
