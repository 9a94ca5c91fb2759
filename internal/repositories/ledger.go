package repositories

import (
	"fmt"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository persists entries in the user's general financial
// history (the analytics mirror target).
type LedgerRepository interface {
	Create(entry *models.LedgerEntry) error
	ListByUser(userID uint, limit, offset int) ([]models.LedgerEntry, error)
	RecentCategorized(userID uint, limit int) ([]models.LedgerEntry, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(entry *models.LedgerEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

func (r *ledgerRepository) ListByUser(userID uint, limit, offset int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

// RecentCategorized returns the user's latest entries that already
// carry a real category. The AI categorizer uses them as few-shot
// examples.
func (r *ledgerRepository) RecentCategorized(userID uint, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := r.db.Where("user_id = ? AND category NOT IN ?", userID, []string{"Uncategorized", ""}).
		Order("date DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load categorized entries: %w", err)
	}
	return entries, nil
}
