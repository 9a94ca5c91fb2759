// Package wallet implements the user-facing wallet operations on top
// of the atomic ledger store in the repositories package.
package wallet

import (
	"context"
	"log"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 50

type service struct {
	repo   repositories.WalletRepository
	cache  Cache
	pin    PinGuard
	mirror Mirror
}

// NewService creates a new wallet service. Cache and mirror are
// optional; nil disables them.
func NewService(repo repositories.WalletRepository, cache Cache, pin PinGuard, mirror Mirror) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if pin == nil {
		panic("pin guard is required")
	}
	return &service{repo: repo, cache: cache, pin: pin, mirror: mirror}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if s.cache != nil {
		if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
			return wallet, nil
		}
	}

	wallet, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetWallet(ctx, wallet); err != nil {
			log.Printf("wallet: failed to cache wallet for user %d: %v", userID, err)
		}
	}
	return wallet, nil
}

// TopUp adds money to the wallet. The PIN check happens before any
// write; on failure nothing is touched. The credit and the TOPUP log
// entry commit together, then the ledger mirror runs best-effort.
func (s *service) TopUp(ctx context.Context, userID uint, amount int64, pin string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	wallet, err := s.repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if wallet.Locked {
		return nil, errors.ErrWalletLocked
	}

	if err := s.pin.Verify(userID, pin); err != nil {
		return nil, err
	}

	var updated *models.Wallet
	err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		updated, err = tx.Credit(userID, amount)
		if err != nil {
			return err
		}
		return tx.CreateTransaction(&models.WalletTransaction{
			WalletID:    updated.ID,
			UserID:      userID,
			Kind:        models.WalletTxTopup,
			Amount:      amount,
			Description: "Added money to wallet",
			Status:      models.WalletTxSuccess,
			Reference:   uuid.NewString(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)

	if s.mirror != nil {
		if err := s.mirror.RecordTopUp(ctx, userID, amount); err != nil {
			log.Printf("wallet: ledger mirror failed for top-up by user %d: %v", userID, err)
		}
	}

	return updated, nil
}

func (s *service) History(ctx context.Context, userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.History(userID, limit, offset)
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
		log.Printf("wallet: failed to invalidate cache for user %d: %v", userID, err)
	}
}
