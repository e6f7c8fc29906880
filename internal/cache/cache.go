package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/nsharda/veridia/internal/model"
)

// New builds a cache from configuration: memory-only by default, layered
// memory+disk when a cache directory is configured, and a no-op cache when
// caching is disabled.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return Disabled{}
	}
	if cfg.Dir != "" {
		return NewLayeredCache(cfg.TTL, cfg.Dir, cfg.TTL)
	}
	return NewMemoryCache(cfg.TTL, 10*time.Minute)
}

// Disabled is a Cache that stores nothing.
type Disabled struct{}

func (Disabled) Get(string) ([]byte, bool)               { return nil, false }
func (Disabled) Set(string, []byte, time.Duration) error { return nil }
func (Disabled) Delete(string) error                     { return nil }
func (Disabled) Clear() error                            { return nil }

// Cache defines the interface for caching search results and embeddings.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from an arbitrary value (a search
// query, an embedding input). Hashing keeps keys short and safe to use as
// disk-cache file names.
func Key(namespace, value string) string {
	hash := sha256.Sum256([]byte(value))
	return "veridia.v1." + namespace + "." + hex.EncodeToString(hash[:])
}
