package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "banking:transactions:"

// RedisTransactionCache implements TransactionCache using Redis.
// Values are stored as JSON with the configured absolute TTL; Redis has no
// sliding renewal, so entries simply age out. This tier is shared by all
// instances of the service.
type RedisTransactionCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisTransactionCache creates a new Redis-backed transaction cache
func NewRedisTransactionCache(cfg RedisConfig, ttl time.Duration) (*RedisTransactionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisTransactionCacheWithClient(client, defaultKeyPrefix, ttl), nil
}

// NewRedisTransactionCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisTransactionCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisTransactionCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = banking.DefaultCacheConfig().AbsoluteTTL
	}
	return &RedisTransactionCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get retrieves cached transactions. An absent key is a miss, not an error.
func (c *RedisTransactionCache) Get(ctx context.Context, key string) ([]*banking.AccountTransaction, bool, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read from Redis: %w", err)
	}

	var transactions []*banking.AccountTransaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached transactions: %w", err)
	}
	return transactions, true, nil
}

// Set stores transactions under the key with the configured TTL
func (c *RedisTransactionCache) Set(ctx context.Context, key string, transactions []*banking.AccountTransaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write to Redis: %w", err)
	}
	return nil
}

// Remove deletes the entry for the key. Removing an absent key is a no-op.
func (c *RedisTransactionCache) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete from Redis: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisTransactionCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client
func (c *RedisTransactionCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisTransactionCache implements TransactionCache
var _ banking.TransactionCache = (*RedisTransactionCache)(nil)
