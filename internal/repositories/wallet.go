package repositories

import (
	stderrors "errors"
	"fmt"

	"fintrack/internal/errors"
	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository owns atomic balance mutation and the append-only
// wallet transaction log.
//
// Credit and DebitIfSufficient are expressed as single conditional
// UPDATE statements, never read-then-write across round trips, so
// concurrent operations on the same wallet cannot lose updates or
// drive the balance negative.
type WalletRepository interface {
	GetOrCreate(userID uint) (*models.Wallet, error)
	GetByUserID(userID uint) (*models.Wallet, error)
	Credit(userID uint, amount int64) (*models.Wallet, error)
	DebitIfSufficient(userID uint, amount int64) (*models.Wallet, error)
	SetPinHash(userID uint, hash string) error

	CreateTransaction(rec *models.WalletTransaction) error
	History(userID uint, limit, offset int) ([]models.WalletTransaction, error)

	ExecuteInTransaction(fn func(WalletRepository) error) error
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

// GetOrCreate returns the user's wallet, creating it with a zero
// balance on first access. The insert ignores unique-index conflicts
// so two concurrent first accesses both resolve to the same row.
func (r *walletRepository) GetOrCreate(userID uint) (*models.Wallet, error) {
	wallet := &models.Wallet{UserID: userID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(wallet).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return r.GetByUserID(userID)
}

func (r *walletRepository) GetByUserID(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// Credit adds amount to the wallet balance in a single UPDATE. The
// wallet is created first if the user has none.
func (r *walletRepository) Credit(userID uint, amount int64) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}
	if _, err := r.GetOrCreate(userID); err != nil {
		return nil, err
	}
	result := r.db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to credit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.ErrWalletNotFound
	}
	return r.GetByUserID(userID)
}

// DebitIfSufficient subtracts amount only when the current balance
// covers it. The balance check and the decrement are one conditional
// UPDATE; zero rows affected means the guard failed and the wallet is
// unchanged.
func (r *walletRepository) DebitIfSufficient(userID uint, amount int64) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, errors.ErrInvalidAmount
	}
	result := r.db.Model(&models.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to debit wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByUserID(userID); err != nil {
			return nil, err
		}
		return nil, errors.ErrInsufficientBalance
	}
	return r.GetByUserID(userID)
}

func (r *walletRepository) SetPinHash(userID uint, hash string) error {
	result := r.db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Update("pin_hash", hash)
	if result.Error != nil {
		return fmt.Errorf("failed to set wallet pin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) CreateTransaction(rec *models.WalletTransaction) error {
	if err := r.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create wallet transaction: %w", err)
	}
	return nil
}

func (r *walletRepository) History(userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	var history []models.WalletTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Counterparty", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet history: %w", err)
	}
	return history, nil
}

// ExecuteInTransaction runs fn against a repository bound to a single
// database transaction.
func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
}
