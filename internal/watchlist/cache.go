package watchlist

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedStore memoizes lookups, including misses, for ttl.
type CachedStore struct {
	next  Lookuper
	cache *cache.Cache
}

func NewCachedStore(next Lookuper, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedStore) Lookup(ctx context.Context, address string) (*Entry, error) {
	if cached, found := c.cache.Get(address); found {
		if entry, ok := cached.(*Entry); ok && entry != nil {
			return entry, nil
		}
		return nil, ErrNotFound
	}

	entry, err := c.next.Lookup(ctx, address)
	switch {
	case err == nil:
		c.cache.Set(address, entry, cache.DefaultExpiration)
	case err == ErrNotFound:
		c.cache.Set(address, (*Entry)(nil), cache.DefaultExpiration)
	}
	return entry, err
}

// Flush drops every cached result; called after a watchlist sync.
func (c *CachedStore) Flush() {
	c.cache.Flush()
}
