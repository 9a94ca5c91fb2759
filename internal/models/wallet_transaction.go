package models

import "time"

// Wallet transaction kinds.
const (
	WalletTxTopup    = "TOPUP"
	WalletTxTransfer = "TRANSFER"
	WalletTxReceived = "RECEIVED"
	WalletTxDeduct   = "DEDUCT"
	WalletTxRefund   = "REFUND"
)

// Wallet transaction statuses.
const (
	WalletTxPending = "PENDING"
	WalletTxSuccess = "SUCCESS"
	WalletTxFailed  = "FAILED"
)

// WalletTransaction is an append-only record of a single wallet
// movement. Amount is signed: negative for outgoing transfers,
// positive otherwise. Rows are never updated or deleted outside a
// full-account deletion cascade.
type WalletTransaction struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	WalletID       uint   `gorm:"index;not null" json:"wallet_id"`
	UserID         uint   `gorm:"index;not null" json:"user_id"`
	Kind           string `gorm:"not null" json:"kind"`
	Amount         int64  `gorm:"not null" json:"-"`
	CounterpartyID *uint  `gorm:"index" json:"counterparty_id,omitempty"`
	Description    string `json:"description"`
	Status         string `gorm:"not null;default:'SUCCESS'" json:"status"`
	Reference      string `gorm:"uniqueIndex" json:"reference"`

	Counterparty *User `gorm:"foreignKey:CounterpartyID" json:"counterparty,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
