// Package cache provides the Redis-backed read cache for wallet
// lookups. Balance truth always lives in PostgreSQL; the cache only
// shortcuts GET /wallet reads and is invalidated on every mutation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient creates a Redis client from config.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

const walletTTL = 5 * time.Minute

// cachedWallet is the cache wire form. The model hides Balance and
// PinHash from API serialization, so the cache carries them
// explicitly.
type cachedWallet struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Balance   int64     `json:"balance"`
	Currency  string    `json:"currency"`
	PinHash   string    `json:"pin_hash"`
	Locked    bool      `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WalletCache caches wallet documents keyed by owner id.
type WalletCache struct {
	client *redis.Client
}

func NewWalletCache(client *redis.Client) *WalletCache {
	return &WalletCache{client: client}
}

func walletKey(userID uint) string {
	return fmt.Sprintf("wallet:%d", userID)
}

func (c *WalletCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	val, err := c.client.Get(ctx, walletKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	var cached cachedWallet
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, err
	}
	return &models.Wallet{
		ID:        cached.ID,
		UserID:    cached.UserID,
		Balance:   cached.Balance,
		Currency:  cached.Currency,
		PinHash:   cached.PinHash,
		Locked:    cached.Locked,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, nil
}

func (c *WalletCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(cachedWallet{
		ID:        wallet.ID,
		UserID:    wallet.UserID,
		Balance:   wallet.Balance,
		Currency:  wallet.Currency,
		PinHash:   wallet.PinHash,
		Locked:    wallet.Locked,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, walletKey(wallet.UserID), data, walletTTL).Err()
}

func (c *WalletCache) InvalidateWallet(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, walletKey(userID)).Err()
}

// HealthCheck pings Redis.
func (c *WalletCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *WalletCache) Close() error {
	return c.client.Close()
}
