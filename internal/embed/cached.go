package embed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nsharda/veridia/internal/cache"
)

// CachedEmbedder wraps an Embedder with a per-text vector cache. Claims
// repeat across documents and snippets repeat across queries, so caching
// cuts API calls noticeably in batch runs.
type CachedEmbedder struct {
	inner Embedder
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedEmbedder wraps the given embedder.
func NewCachedEmbedder(inner Embedder, c cache.Cache, ttl time.Duration) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, cache: c, ttl: ttl}
}

// Encode resolves cached vectors first and batch-encodes only the misses,
// preserving input order in the result.
func (e *CachedEmbedder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int
	for i, text := range texts {
		if data, found := e.cache.Get(cache.Key("embed", text)); found {
			var vec []float32
			if err := json.Unmarshal(data, &vec); err == nil {
				vectors[i] = vec
				continue
			}
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fresh, err := e.inner.Encode(ctx, missing)
	if err != nil {
		return nil, err
	}

	for j, vec := range fresh {
		vectors[missingIdx[j]] = vec
		if data, err := json.Marshal(vec); err == nil {
			_ = e.cache.Set(cache.Key("embed", missing[j]), data, e.ttl)
		}
	}

	return vectors, nil
}
