package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nsharda/veridia/internal/cache"
)

// countingProvider records how many searches reached it
type countingProvider struct {
	calls   int
	results []Result
	err     error
}

func (p *countingProvider) Search(ctx context.Context, query string) ([]Result, error) {
	p.calls++
	return p.results, p.err
}

func TestCachedProvider_SecondSearchHitsCache(t *testing.T) {
	inner := &countingProvider{results: []Result{{Title: "t", Snippet: "s", Link: "https://example.com"}}}
	provider := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		results, err := provider.Search(context.Background(), "same query")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 1 || results[0].Link != "https://example.com" {
			t.Fatalf("unexpected results: %v", results)
		}
	}

	if inner.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", inner.calls)
	}
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("quota exceeded")}
	provider := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := provider.Search(context.Background(), "q"); err == nil {
			t.Fatal("expected error, got nil")
		}
	}

	if inner.calls != 2 {
		t.Errorf("expected errors to stay retryable, got %d calls", inner.calls)
	}
}

func TestCachedProvider_EmptyResultsNotCached(t *testing.T) {
	inner := &countingProvider{}
	provider := NewCachedProvider(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := provider.Search(context.Background(), "q"); err != nil {
			t.Fatalf("Search failed: %v", err)
		}
	}

	if inner.calls != 2 {
		t.Errorf("expected empty result sets not cached, got %d calls", inner.calls)
	}
}
