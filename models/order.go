package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentMethod string
type PaymentStatus string
type DiscountType string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodCOD    PaymentMethod = "cod"

	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodPaypal, PaymentMethodCOD:
		return true
	}
	return false
}

type Order struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	UserID            string          `gorm:"not null;index" json:"user_id"`
	Status            OrderStatus     `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddressID uint            `gorm:"not null" json:"shipping_address_id"`
	BillingAddressID  uint            `gorm:"not null" json:"billing_address_id"`
	CouponID          *uint           `json:"coupon_id,omitempty"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payments          []Payment       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderItem snapshots the unit price at purchase time so later catalog price
// changes never alter a placed order.
type OrderItem struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	OrderID          uint            `gorm:"index" json:"order_id"`
	ProductVariantID uint            `gorm:"not null" json:"product_variant_id"`
	Quantity         int             `gorm:"not null" json:"quantity"`
	PriceAtPurchase  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
}

type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderID       uint            `gorm:"index" json:"order_id"`
	Method        PaymentMethod   `gorm:"type:VARCHAR(20);not null" json:"method"`
	Status        PaymentStatus   `gorm:"type:VARCHAR(20);default:'initiated';index" json:"status"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	TransactionID string          `gorm:"index" json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Coupon carries a usage ceiling, but redemption accounting is not wired into
// order placement; UsedCount is never decremented here.
type Coupon struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Code          string          `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType  DiscountType    `gorm:"type:VARCHAR(20);not null" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	ExpiresAt     time.Time       `json:"expires_at"`
	MaxUsage      int             `gorm:"default:1" json:"max_usage"`
	UsedCount     int             `gorm:"default:0" json:"used_count"`
}
