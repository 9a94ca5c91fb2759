package wallet

import (
	"context"

	"fintrack/internal/models"
)

// Cache is the wallet read cache. All methods are best-effort; a cache
// failure never fails the operation.
type Cache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

// PinGuard gates balance-mutating operations.
type PinGuard interface {
	Verify(userID uint, rawPin string) error
}

// Mirror writes wallet events through to the general ledger.
type Mirror interface {
	RecordTopUp(ctx context.Context, userID uint, amount int64) error
}

// Service exposes the user-facing wallet operations.
type Service interface {
	// GetWallet returns the user's wallet, creating it on first access.
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)

	// TopUp verifies the PIN, credits the wallet and records the
	// event. Returns the updated wallet.
	TopUp(ctx context.Context, userID uint, amount int64, pin string) (*models.Wallet, error)

	// History returns the wallet transaction log, newest first.
	History(ctx context.Context, userID uint, limit, offset int) ([]models.WalletTransaction, error)
}
