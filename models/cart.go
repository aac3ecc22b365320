package models

import "time"

// Cart is owned by exactly one principal: UserID XOR GuestToken is set.
// The unique indexes enforce at most one cart per owner.
type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *string    `gorm:"uniqueIndex" json:"user_id,omitempty"`
	GuestToken *string    `gorm:"uniqueIndex" json:"guest_token,omitempty"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	CartID           uint           `gorm:"uniqueIndex:idx_cart_items_cart_variant" json:"cart_id"`
	ProductVariantID uint           `gorm:"uniqueIndex:idx_cart_items_cart_variant" json:"product_variant_id"`
	ProductVariant   ProductVariant `gorm:"foreignKey:ProductVariantID" json:"product_variant"`
	Quantity         int            `gorm:"not null" json:"quantity"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
