package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_DefaultBurst(t *testing.T) {
	limiter := NewLimiter(10, 3)
	if limiter.defaultBurst != 3 {
		t.Errorf("expected burst 3, got %d", limiter.defaultBurst)
	}

	limiter = NewLimiter(10, 0)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected fallback burst 5, got %d", limiter.defaultBurst)
	}
}

func TestLimiter_SameDomainIsPaced(t *testing.T) {
	// Burst 1 at 20 rps: the second request on the same domain must wait
	// for a token, roughly 50ms.
	limiter := NewLimiter(20, 1)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 2; i++ {
		if err := limiter.Wait(ctx, "https://www.reuters.com/world"); err != nil {
			t.Fatalf("wait %d failed: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("expected second request paced, elapsed %v", elapsed)
	}
}

func TestLimiter_DomainsAreIndependent(t *testing.T) {
	// 1 rps per domain: a shared bucket would stall this loop for seconds.
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	start := time.Now()
	for _, u := range []string{
		"https://www.bbc.com/news",
		"https://www.reuters.com/world",
		"https://www.ndtv.com/india",
	} {
		if err := limiter.Wait(ctx, u); err != nil {
			t.Fatalf("wait failed for %s: %v", u, err)
		}
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("independent domains must not queue behind each other, took %v", elapsed)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)

	start := time.Now()
	err := limiter.WaitWithDelay(context.Background(), "https://www.ndtv.com", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected at least 50ms delay, got %v", elapsed)
	}
}

func TestLimiter_CancelledContext(t *testing.T) {
	limiter := NewLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx, "https://www.bbc.com"); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestExtractDomain(t *testing.T) {
	domain, err := extractDomain("https://www.reuters.com/article/x")
	if err != nil {
		t.Fatalf("extractDomain failed: %v", err)
	}
	if domain != "www.reuters.com" {
		t.Errorf("expected www.reuters.com, got %s", domain)
	}

	if _, err := extractDomain("::bad-url"); err == nil {
		t.Errorf("expected error for malformed URL")
	}
}
