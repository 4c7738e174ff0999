package banking

import (
	"context"
	"time"
)

// CacheConfig holds expiration policy for transaction query caches
type CacheConfig struct {
	// AbsoluteTTL is the hard deadline after which an entry is evicted
	// regardless of access (default 24h)
	AbsoluteTTL time.Duration
	// SlidingWindow is renewed on each access; an entry idle longer than
	// this is evicted even before the absolute deadline (default 60m)
	SlidingWindow time.Duration
}

// DefaultCacheConfig returns the expiration policy used for reference-number queries
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		AbsoluteTTL:   24 * time.Hour,
		SlidingWindow: 60 * time.Minute,
	}
}

// TransactionCache is a key-value cache of transaction query results, keyed by
// the reference number that produced them. Implementations must be safe for
// concurrent use. A missing key is reported via the found flag, not an error;
// Remove is idempotent.
type TransactionCache interface {
	Get(ctx context.Context, key string) ([]*AccountTransaction, bool, error)
	Set(ctx context.Context, key string, transactions []*AccountTransaction) error
	Remove(ctx context.Context, key string) error
}
