package models

import "time"

// Ledger entry types.
const (
	LedgerIncome  = "income"
	LedgerExpense = "expense"
	LedgerSavings = "savings"
)

// LedgerEntry is a record in the user's general financial history.
// Wallet operations mirror into this ledger so analytics see every
// wallet-affecting event; the wallet balance remains the source of
// truth when the two disagree.
type LedgerEntry struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Type        string `gorm:"not null" json:"type"`
	SubType     string `gorm:"not null" json:"sub_type"`
	Title       string `gorm:"not null" json:"title"`
	Amount      int64  `gorm:"not null" json:"-"`
	Category    string `gorm:"not null" json:"category"`
	PaymentMode string `gorm:"not null" json:"payment_mode"`

	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
