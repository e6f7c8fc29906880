package search

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nsharda/veridia/internal/cache"
)

// CachedProvider wraps a Provider with a cache keyed by query, so repeated
// claims and re-runs do not burn search quota.
type CachedProvider struct {
	inner Provider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedProvider wraps the given provider.
func NewCachedProvider(inner Provider, c cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, cache: c, ttl: ttl}
}

// Search returns cached results when present; only successful, non-empty
// result sets are cached so transient provider failures stay retryable.
func (p *CachedProvider) Search(ctx context.Context, query string) ([]Result, error) {
	key := cache.Key("search", query)

	if data, found := p.cache.Get(key); found {
		var results []Result
		if err := json.Unmarshal(data, &results); err == nil {
			return results, nil
		}
		// Corrupt entry: drop it and fall through to a fresh search.
		_ = p.cache.Delete(key)
	}

	results, err := p.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(results) > 0 {
		if data, err := json.Marshal(results); err == nil {
			_ = p.cache.Set(key, data, p.ttl)
		}
	}

	return results, nil
}
