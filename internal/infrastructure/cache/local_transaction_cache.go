package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

// LocalTransactionCache implements TransactionCache using in-process storage.
// Entries carry two expiration clocks: an absolute deadline fixed at Set time
// and a sliding deadline renewed on every hit. An entry is live only while
// both clocks are in the future, so a hot entry still dies at the absolute
// deadline and a cold one dies when its sliding window lapses.
type LocalTransactionCache struct {
	mu      sync.Mutex
	entries map[string]*localEntry

	config  banking.CacheConfig
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	cleanupInterval time.Duration

	hits   int64
	misses int64
}

type localEntry struct {
	transactions   []*banking.AccountTransaction
	absoluteExpiry time.Time
	slidingExpiry  time.Time
}

func (e *localEntry) isExpired(now time.Time) bool {
	return now.After(e.absoluteExpiry) || now.After(e.slidingExpiry)
}

// LocalTransactionCacheOption is a functional option for configuring the cache
type LocalTransactionCacheOption func(*LocalTransactionCache)

// WithLocalConfig sets the expiration configuration
func WithLocalConfig(config banking.CacheConfig) LocalTransactionCacheOption {
	return func(c *LocalTransactionCache) {
		c.config = config
	}
}

// WithLocalLogger sets the logger for the cache
func WithLocalLogger(logger *zap.Logger) LocalTransactionCacheOption {
	return func(c *LocalTransactionCache) {
		c.logger = logger
	}
}

// WithCleanupInterval sets how often expired entries are swept
func WithCleanupInterval(interval time.Duration) LocalTransactionCacheOption {
	return func(c *LocalTransactionCache) {
		c.cleanupInterval = interval
	}
}

// NewLocalTransactionCache creates a new in-process transaction cache
func NewLocalTransactionCache(opts ...LocalTransactionCacheOption) *LocalTransactionCache {
	cache := &LocalTransactionCache{
		entries:         make(map[string]*localEntry),
		config:          banking.DefaultCacheConfig(),
		logger:          zap.NewNop(),
		stopCh:          make(chan struct{}),
		cleanupInterval: defaultCleanupInterval,
	}

	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// Get retrieves cached transactions and renews the sliding window on a hit
func (c *LocalTransactionCache) Get(ctx context.Context, key string) ([]*banking.AccountTransaction, bool, error) {
	now := time.Now()

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && entry.isExpired(now) {
		delete(c.entries, key)
		ok = false
	}
	if ok {
		// The sliding deadline never outlives the absolute one
		sliding := now.Add(c.config.SlidingWindow)
		if sliding.After(entry.absoluteExpiry) {
			sliding = entry.absoluteExpiry
		}
		entry.slidingExpiry = sliding
	}
	c.mu.Unlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		c.logger.Debug("Local cache miss", zap.String("key", key))
		return nil, false, nil
	}

	atomic.AddInt64(&c.hits, 1)
	c.logger.Debug("Local cache hit", zap.String("key", key))
	return entry.transactions, true, nil
}

// Set stores transactions under the key, resetting both expiration clocks
func (c *LocalTransactionCache) Set(ctx context.Context, key string, transactions []*banking.AccountTransaction) error {
	now := time.Now()
	entry := &localEntry{
		transactions:   transactions,
		absoluteExpiry: now.Add(c.config.AbsoluteTTL),
		slidingExpiry:  now.Add(c.config.SlidingWindow),
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	c.logger.Debug("Cached transactions locally",
		zap.String("key", key),
		zap.Int("count", len(transactions)))
	return nil
}

// Remove deletes the entry for the key. Removing an absent key is a no-op.
func (c *LocalTransactionCache) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	c.logger.Debug("Removed local cache entry", zap.String("key", key))
	return nil
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *LocalTransactionCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// GetStats returns cache hit and miss counters
func (c *LocalTransactionCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Count returns the number of live entries
func (c *LocalTransactionCache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cleanupExpired periodically removes expired entries
func (c *LocalTransactionCache) cleanupExpired() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						c.logger.Error("Panic in cache cleanup", zap.Any("panic", r))
					}
				}()
				c.doCleanup()
			}()
		}
	}
}

func (c *LocalTransactionCache) doCleanup() {
	now := time.Now()
	var removed int

	c.mu.Lock()
	for key, entry := range c.entries {
		if entry.isExpired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	if removed > 0 {
		c.logger.Debug("Cleaned up expired local cache entries", zap.Int("removed", removed))
	}
}

// Ensure LocalTransactionCache implements TransactionCache
var _ banking.TransactionCache = (*LocalTransactionCache)(nil)
