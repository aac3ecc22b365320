package models

import "time"

type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

func (t AddressType) Valid() bool {
	return t == AddressTypeBilling || t == AddressTypeShipping
}

type Address struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     string      `gorm:"not null;index:idx_addresses_user_type" json:"user_id"`
	Type       AddressType `gorm:"type:VARCHAR(20);not null;index:idx_addresses_user_type" json:"type"`
	Line1      string      `gorm:"not null" json:"line1"`
	Line2      *string     `json:"line2,omitempty"`
	City       string      `gorm:"not null" json:"city"`
	State      string      `gorm:"not null" json:"state"`
	Country    string      `gorm:"not null" json:"country"`
	PostalCode string      `gorm:"not null" json:"postal_code"`
	IsDefault  bool        `json:"is_default"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
