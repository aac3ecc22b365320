package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string           `gorm:"not null" json:"name"`
	Description      string           `json:"description"`
	Gender           string           `json:"gender"`
	DefaultVariantID *uint            `json:"default_variant_id,omitempty"`
	Variants         []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductVariant carries the sellable unit. SalePrice, when set, must not
// exceed Price; the effective unit price is SalePrice if present else Price.
type ProductVariant struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint             `gorm:"not null;index" json:"product_id"`
	SKU       string           `gorm:"uniqueIndex;not null" json:"sku"`
	Price     decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	SalePrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sale_price,omitempty"`
	Color     string           `json:"color"`
	Size      string           `json:"size"`
	InStock   int              `json:"in_stock"`
	Weight    float64          `json:"weight"`
	CreatedAt time.Time        `json:"created_at"`
}
