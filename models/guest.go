package models

import "time"

// Guest is an ephemeral anonymous session identified by an opaque token.
// It is created on the first anonymous cart interaction and removed when it
// expires or when its cart is merged into a signed-in user.
type Guest struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (g Guest) Expired(now time.Time) bool {
	return !g.ExpiresAt.After(now)
}
