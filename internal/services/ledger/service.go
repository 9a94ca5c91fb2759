// Package ledger is the write-through mirror between wallet events and
// the user's general financial history. Mirror writes are best-effort:
// a failure here is logged and never rolls back or fails the wallet
// operation that triggered it. The wallet balance is the source of
// truth, and the ledger may undercount until operators reconcile.
package ledger

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/categorizer"
)

// Payment modes and subtypes stamped on mirrored entries.
const (
	paymentModeWallet = "Wallet"
	subTypeVariable   = "Variable"
	subTypeOther      = "Other"
)

// Service records wallet events into the general ledger.
type Service interface {
	RecordTopUp(ctx context.Context, userID uint, amount int64) error
	RecordTransferExpense(ctx context.Context, senderID uint, recipientName, description string, amount int64) error
	RecordTransferIncome(ctx context.Context, recipientID uint, senderName string, amount int64) error
	List(ctx context.Context, userID uint, limit, offset int) ([]models.LedgerEntry, error)
}

type service struct {
	repo        repositories.LedgerRepository
	categorizer categorizer.Categorizer
}

// NewService creates the mirror service. A nil categorizer falls back
// to the static Others bucket.
func NewService(repo repositories.LedgerRepository, cat categorizer.Categorizer) Service {
	if repo == nil {
		panic("ledger repository is required")
	}
	if cat == nil {
		cat = categorizer.Static{Category: categorizer.CategoryOthers}
	}
	return &service{repo: repo, categorizer: cat}
}

// RecordTopUp mirrors a wallet top-up as income.
func (s *service) RecordTopUp(ctx context.Context, userID uint, amount int64) error {
	return s.repo.Create(&models.LedgerEntry{
		UserID:      userID,
		Type:        models.LedgerIncome,
		SubType:     subTypeVariable,
		Title:       "Wallet Deposit",
		Amount:      amount,
		Category:    "Wallet TopUp",
		PaymentMode: paymentModeWallet,
		Date:        time.Now(),
	})
}

// RecordTransferExpense mirrors the sender side of a transfer. The
// category comes from the AI categorizer; categorizer implementations
// degrade to a fallback bucket rather than failing.
func (s *service) RecordTransferExpense(ctx context.Context, senderID uint, recipientName, description string, amount int64) error {
	title := fmt.Sprintf("Sent to %s", recipientName)
	if description != "" {
		title = fmt.Sprintf("Sent to %s - %s", recipientName, description)
	}

	category := s.categorizer.Categorize(ctx, senderID, title, amount)

	return s.repo.Create(&models.LedgerEntry{
		UserID:      senderID,
		Type:        models.LedgerExpense,
		SubType:     subTypeVariable,
		Title:       title,
		Amount:      amount,
		Category:    category,
		PaymentMode: paymentModeWallet,
		Date:        time.Now(),
	})
}

// RecordTransferIncome mirrors the recipient side of a transfer with
// the fixed Transfer category.
func (s *service) RecordTransferIncome(ctx context.Context, recipientID uint, senderName string, amount int64) error {
	return s.repo.Create(&models.LedgerEntry{
		UserID:      recipientID,
		Type:        models.LedgerIncome,
		SubType:     subTypeOther,
		Title:       fmt.Sprintf("Received from %s", senderName),
		Amount:      amount,
		Category:    "Transfer",
		PaymentMode: paymentModeWallet,
		Date:        time.Now(),
	})
}

func (s *service) List(ctx context.Context, userID uint, limit, offset int) ([]models.LedgerEntry, error) {
	return s.repo.ListByUser(userID, limit, offset)
}
