package cache

import (
	"context"
	"time"
)

// MaxTTLCache caps the expiry of every entry written through it.
type MaxTTLCache struct {
	Cache
	max time.Duration
}

// WithMaxTTL wraps c so no entry outlives max. A non-positive max returns c
// unchanged.
func WithMaxTTL(c Cache, max time.Duration) Cache {
	if max <= 0 {
		return c
	}
	return &MaxTTLCache{Cache: c, max: max}
}

func (c *MaxTTLCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl == 0 || ttl > c.max {
		ttl = c.max
	}
	return c.Cache.Set(ctx, key, data, ttl)
}
