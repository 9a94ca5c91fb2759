package transfer

import (
	"context"

	"fintrack/internal/models"
)

// Identity resolves accounts. It is the only view of the user
// directory the engine gets.
type Identity interface {
	GetByID(id uint) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
}

// PinGuard authorizes balance-mutating operations.
type PinGuard interface {
	Verify(userID uint, rawPin string) error
}

// Mirror writes both sides of a committed transfer into the general
// ledger.
type Mirror interface {
	RecordTransferExpense(ctx context.Context, senderID uint, recipientName, description string, amount int64) error
	RecordTransferIncome(ctx context.Context, recipientID uint, senderName string, amount int64) error
}

// Cache invalidates wallet read caches after a balance change.
type Cache interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

// Notifier tells the recipient about incoming money. Fire-and-forget.
type Notifier interface {
	TransferReceived(userID uint, from string, amount int64)
}

// Request describes a peer-to-peer transfer.
type Request struct {
	RecipientPhone string
	Amount         int64
	Description    string
	Pin            string
}

// Result is what the sender sees after a committed transfer.
type Result struct {
	Reference     string
	SenderBalance int64
}

// Service is the transfer engine contract.
type Service interface {
	Transfer(ctx context.Context, senderID uint, req Request) (*Result, error)
}
