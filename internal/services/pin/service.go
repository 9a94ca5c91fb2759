// Package pin implements the authorization gate in front of every
// balance-mutating wallet operation. The raw PIN is never persisted;
// only a bcrypt hash is stored and compared.
package pin

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"regexp"

	"fintrack/internal/errors"
	"fintrack/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// pinPattern accepts 4 to 6 ASCII digits. Anything else is rejected
// before hashing.
var pinPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// WalletStore is the slice of the wallet repository the guard needs.
type WalletStore interface {
	GetOrCreate(userID uint) (*models.Wallet, error)
	SetPinHash(userID uint, hash string) error
}

// UserStore resolves accounts for password re-verification on reset.
type UserStore interface {
	GetByID(id uint) (*models.User, error)
}

// Cache invalidates cached wallet reads after a PIN change, so a
// freshly set PIN is visible immediately instead of after the cache
// TTL.
type Cache interface {
	InvalidateWallet(ctx context.Context, userID uint) error
}

// Service is the PIN guard contract.
type Service interface {
	Set(ctx context.Context, userID uint, rawPin string) error
	Verify(userID uint, rawPin string) error
	Reset(ctx context.Context, userID uint, password, newPin string) error
}

type service struct {
	wallets WalletStore
	users   UserStore
	cache   Cache
}

// NewService creates a new PIN guard. Cache is optional; nil disables
// invalidation.
func NewService(wallets WalletStore, users UserStore, cache Cache) Service {
	if wallets == nil {
		panic("wallet store is required")
	}
	if users == nil {
		panic("user store is required")
	}
	return &service{wallets: wallets, users: users, cache: cache}
}

// Set configures the wallet PIN. It is set-once: changing an existing
// PIN goes through Reset, which re-verifies the account password.
func (s *service) Set(ctx context.Context, userID uint, rawPin string) error {
	if !pinPattern.MatchString(rawPin) {
		return errors.ErrInvalidPin
	}

	wallet, err := s.wallets.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if wallet.HasPin() {
		return errors.ErrPinAlreadySet
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	if err := s.wallets.SetPinHash(userID, string(hash)); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// Verify checks the supplied PIN against the stored hash. bcrypt's
// comparison is constant-time over the hash, so verification leaks no
// timing signal about the stored secret.
func (s *service) Verify(userID uint, rawPin string) error {
	wallet, err := s.wallets.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if !wallet.HasPin() {
		return errors.ErrPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(wallet.PinHash), []byte(rawPin)); err != nil {
		if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return errors.ErrPinMismatch
		}
		return fmt.Errorf("failed to verify pin: %w", err)
	}
	return nil
}

// Reset replaces the PIN after re-verifying the account password.
func (s *service) Reset(ctx context.Context, userID uint, password, newPin string) error {
	if !pinPattern.MatchString(newPin) {
		return errors.ErrInvalidPin
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return errors.ErrInvalidCredentials
	}

	if _, err := s.wallets.GetOrCreate(userID); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	if err := s.wallets.SetPinHash(userID, string(hash)); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *service) invalidate(ctx context.Context, userID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
		log.Printf("pin: failed to invalidate wallet cache for user %d: %v", userID, err)
	}
}
