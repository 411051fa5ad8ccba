package weather

import (
	"context"
	"sync"
	"time"
)

// Client wraps a Provider with a TTL cache so the provider is hit at most
// once per refresh interval no matter how often Current is called.
type Client struct {
	provider Provider
	ttl      time.Duration

	mu      sync.Mutex
	cached  *Snapshot
	fetched time.Time
}

// NewClient creates a caching client. ttl <= 0 disables caching.
func NewClient(provider Provider, ttl time.Duration) *Client {
	return &Client{provider: provider, ttl: ttl}
}

// Current returns the cached snapshot when it is still fresh, otherwise
// fetches from the provider. A failed fetch does not evict the cache,
// but a stale cache is not returned in place of the error either; the
// caller decides whether to keep showing its previous snapshot.
func (c *Client) Current(ctx context.Context, loc Location, units Units) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && c.ttl > 0 && time.Since(c.fetched) < c.ttl {
		return *c.cached, nil
	}

	snap, err := c.provider.Current(ctx, loc, units)
	if err != nil {
		return Snapshot{}, err
	}

	c.cached = &snap
	c.fetched = time.Now()
	return snap, nil
}
