// Package validate checks whether evidence sources are actually
// reachable. Results are informational only and never affect a verdict.
package validate

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/nsharda/veridia/internal/model"
	"github.com/nsharda/veridia/internal/worker"
)

const userAgent = "Veridia/0.1 (+https://github.com/nsharda/veridia)"

// SourceChecker HEAD-requests evidence URLs concurrently, respecting
// robots.txt.
type SourceChecker struct {
	httpClient *http.Client
	robots     *robotsGate
	limiter    *worker.Limiter
	maxWorkers int
}

// NewSourceChecker creates a checker with the given per-request timeout
// and concurrency bound.
func NewSourceChecker(timeout time.Duration, maxWorkers int) *SourceChecker {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &SourceChecker{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:     newRobotsGate(userAgent, timeout),
		limiter:    worker.NewLimiter(2, 2),
		maxWorkers: maxWorkers,
	}
}

// Check validates all URLs concurrently, preserving input order in the
// results.
func (c *SourceChecker) Check(ctx context.Context, urls []string) []model.SourceCheck {
	if len(urls) == 0 {
		return []model.SourceCheck{}
	}

	results := make([]model.SourceCheck, len(urls))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.maxWorkers)

	for i, u := range urls {
		wg.Add(1)
		go func(idx int, rawURL string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = model.SourceCheck{URL: rawURL, Error: "context cancelled"}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.checkSingle(ctx, rawURL)
		}(i, u)
	}

	wg.Wait()
	return results
}

// checkSingle checks one URL. Robots.txt disallow is recorded, not
// treated as an error.
func (c *SourceChecker) checkSingle(ctx context.Context, rawURL string) model.SourceCheck {
	result := model.SourceCheck{URL: rawURL}

	allowed, crawlDelay, err := c.robots.allows(ctx, rawURL)
	if err == nil && !allowed {
		result.Disallowed = true
		return result
	}

	if err := c.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		result.Error = fmt.Sprintf("rate limit: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.IsAccessible = resp.StatusCode >= 200 && resp.StatusCode < 400
	return result
}
