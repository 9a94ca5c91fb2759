package pin

import (
	"context"
	"testing"

	"fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeWalletStore struct {
	wallet *models.Wallet
}

func (f *fakeWalletStore) GetOrCreate(userID uint) (*models.Wallet, error) {
	if f.wallet == nil {
		f.wallet = &models.Wallet{ID: 1, UserID: userID}
	}
	return f.wallet, nil
}

func (f *fakeWalletStore) SetPinHash(userID uint, hash string) error {
	if f.wallet == nil {
		return errors.ErrWalletNotFound
	}
	f.wallet.PinHash = hash
	return nil
}

type fakeUserStore struct {
	user *models.User
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	if f.user == nil {
		return nil, errors.ErrUserNotFound
	}
	return f.user, nil
}

// fakeCache keeps cached wallet snapshots so tests can observe whether
// a PIN change evicted the stale copy.
type fakeCache struct {
	cached       map[uint]*models.Wallet
	invalidation int
}

func newFakeCache() *fakeCache {
	return &fakeCache{cached: map[uint]*models.Wallet{}}
}

func (c *fakeCache) warm(userID uint, w models.Wallet) {
	c.cached[userID] = &w
}

func (c *fakeCache) InvalidateWallet(ctx context.Context, userID uint) error {
	delete(c.cached, userID)
	c.invalidation++
	return nil
}

func userWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{Name: "Asha", Password: string(hash)}
}

func TestSetAndVerify(t *testing.T) {
	wallets := &fakeWalletStore{}
	svc := NewService(wallets, &fakeUserStore{}, nil)

	require.NoError(t, svc.Set(context.Background(), 1, "4321"))
	assert.NotEmpty(t, wallets.wallet.PinHash)
	assert.NotEqual(t, "4321", wallets.wallet.PinHash)

	assert.NoError(t, svc.Verify(1, "4321"))
	assert.ErrorIs(t, svc.Verify(1, "9999"), errors.ErrPinMismatch)
}

func TestSetRejectsBadFormats(t *testing.T) {
	svc := NewService(&fakeWalletStore{}, &fakeUserStore{}, nil)

	for _, pin := range []string{"", "123", "1234567", "12a4", "٤٣٢١", "12 34"} {
		assert.ErrorIs(t, svc.Set(context.Background(), 1, pin), errors.ErrInvalidPin, "pin %q", pin)
	}
}

func TestSetIsSetOnce(t *testing.T) {
	svc := NewService(&fakeWalletStore{}, &fakeUserStore{}, nil)

	require.NoError(t, svc.Set(context.Background(), 1, "123456"))
	assert.ErrorIs(t, svc.Set(context.Background(), 1, "654321"), errors.ErrPinAlreadySet)
}

func TestVerifyWithoutPin(t *testing.T) {
	svc := NewService(&fakeWalletStore{}, &fakeUserStore{}, nil)

	assert.ErrorIs(t, svc.Verify(1, "4321"), errors.ErrPinNotSet)
}

func TestSetEvictsCachedWallet(t *testing.T) {
	wallets := &fakeWalletStore{}
	cache := newFakeCache()
	svc := NewService(wallets, &fakeUserStore{}, cache)

	// A stale snapshot without the PIN sits in the cache.
	cache.warm(1, models.Wallet{ID: 1, UserID: 1})

	require.NoError(t, svc.Set(context.Background(), 1, "4321"))

	_, stale := cache.cached[1]
	assert.False(t, stale, "setting a PIN must evict the cached wallet so reads see the new PIN state")
	assert.Equal(t, 1, cache.invalidation)
}

func TestResetRequiresPassword(t *testing.T) {
	wallets := &fakeWalletStore{}
	users := &fakeUserStore{user: userWithPassword(t, "hunter2")}
	cache := newFakeCache()
	svc := NewService(wallets, users, cache)

	require.NoError(t, svc.Set(context.Background(), 1, "4321"))
	cache.warm(1, *wallets.wallet)

	assert.ErrorIs(t, svc.Reset(context.Background(), 1, "wrong-password", "5678"), errors.ErrInvalidCredentials)
	assert.NoError(t, svc.Verify(1, "4321"), "failed reset must leave the old pin intact")
	_, cached := cache.cached[1]
	assert.True(t, cached, "failed reset must not touch the cache")

	require.NoError(t, svc.Reset(context.Background(), 1, "hunter2", "5678"))
	assert.ErrorIs(t, svc.Verify(1, "4321"), errors.ErrPinMismatch)
	assert.NoError(t, svc.Verify(1, "5678"))
	_, cached = cache.cached[1]
	assert.False(t, cached, "reset must evict the cached wallet")
}

func TestResetValidatesNewPin(t *testing.T) {
	users := &fakeUserStore{user: userWithPassword(t, "hunter2")}
	svc := NewService(&fakeWalletStore{}, users, nil)

	assert.ErrorIs(t, svc.Reset(context.Background(), 1, "hunter2", "12"), errors.ErrInvalidPin)
}
