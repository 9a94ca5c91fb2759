package ledger

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/services/categorizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLedgerRepo struct {
	entries []models.LedgerEntry
}

func (r *memLedgerRepo) Create(entry *models.LedgerEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memLedgerRepo) ListByUser(userID uint, limit, offset int) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) RecentCategorized(userID uint, limit int) ([]models.LedgerEntry, error) {
	return nil, nil
}

func TestRecordTopUp(t *testing.T) {
	repo := &memLedgerRepo{}
	svc := NewService(repo, nil)

	require.NoError(t, svc.RecordTopUp(context.Background(), 1, 5_000))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, models.LedgerIncome, entry.Type)
	assert.Equal(t, "Wallet Deposit", entry.Title)
	assert.Equal(t, "Wallet TopUp", entry.Category)
	assert.Equal(t, int64(5_000), entry.Amount)
	assert.Equal(t, "Wallet", entry.PaymentMode)
	assert.False(t, entry.Date.IsZero())
}

func TestRecordTransferExpense(t *testing.T) {
	repo := &memLedgerRepo{}
	svc := NewService(repo, categorizer.Static{Category: "Food"})

	require.NoError(t, svc.RecordTransferExpense(context.Background(), 1, "Ravi", "dinner", 45_000))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, models.LedgerExpense, entry.Type)
	assert.Equal(t, "Sent to Ravi - dinner", entry.Title)
	assert.Equal(t, "Food", entry.Category)
	assert.Equal(t, int64(45_000), entry.Amount)
}

func TestRecordTransferExpenseWithoutDescription(t *testing.T) {
	repo := &memLedgerRepo{}
	svc := NewService(repo, nil)

	require.NoError(t, svc.RecordTransferExpense(context.Background(), 1, "Ravi", "", 45_000))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "Sent to Ravi", repo.entries[0].Title)
	// Without a categorizer the entry still lands, in the fallback
	// bucket.
	assert.Equal(t, categorizer.CategoryOthers, repo.entries[0].Category)
}

func TestRecordTransferExpenseWithoutModel(t *testing.T) {
	repo := &memLedgerRepo{}
	// A nil *Gemini is what the wiring produces when no API key is
	// configured; entries must land as Uncategorized, not Others.
	var gem *categorizer.Gemini
	svc := NewService(repo, gem)

	require.NoError(t, svc.RecordTransferExpense(context.Background(), 1, "Ravi", "dinner", 45_000))

	require.Len(t, repo.entries, 1)
	assert.Equal(t, categorizer.CategoryUncategorized, repo.entries[0].Category)
}

func TestRecordTransferIncome(t *testing.T) {
	repo := &memLedgerRepo{}
	svc := NewService(repo, nil)

	require.NoError(t, svc.RecordTransferIncome(context.Background(), 2, "Asha", 45_000))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, models.LedgerIncome, entry.Type)
	assert.Equal(t, "Received from Asha", entry.Title)
	assert.Equal(t, "Transfer", entry.Category)
}
