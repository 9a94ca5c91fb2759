package models

import (
	"time"
)

// Wallet holds a user's stored balance. One wallet per user, created
// lazily on first access.
//
// Balance is kept in integer minor units (paise) so balance arithmetic
// at the storage layer never accumulates floating-point drift.
// Conversion to display units happens at the HTTP boundary.
type Wallet struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance  int64  `gorm:"not null;default:0" json:"-"`
	Currency string `gorm:"default:'INR'" json:"currency"`
	PinHash  string `gorm:"default:''" json:"-"`
	Locked   bool   `gorm:"default:false" json:"locked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPin reports whether a transaction PIN has been configured.
func (w *Wallet) HasPin() bool {
	return w.PinHash != ""
}
