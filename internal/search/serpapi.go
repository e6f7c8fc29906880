package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// SerpClient queries a SerpApi-compatible Google search endpoint.
// Requests are rate limited client-side so batch runs stay inside the
// provider's quota.
type SerpClient struct {
	apiKey     string
	baseURL    string
	language   string
	country    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSerpClient creates a search client. baseURL defaults to the public
// SerpApi endpoint when empty.
func NewSerpClient(apiKey, baseURL, language, country string, timeout time.Duration, ratePerSec float64) *SerpClient {
	if baseURL == "" {
		baseURL = "https://serpapi.com/search.json"
	}
	if language == "" {
		language = "en"
	}
	if country == "" {
		country = "us"
	}
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	if ratePerSec <= 0 {
		ratePerSec = 2
	}

	return &SerpClient{
		apiKey:   apiKey,
		baseURL:  baseURL,
		language: language,
		country:  country,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), 1),
	}
}

type serpResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic_results"`
	Error string `json:"error"`
}

// Search executes the query and returns the organic results in the
// provider's ranking order.
func (c *SerpClient) Search(ctx context.Context, query string) ([]Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("hl", c.language)
	params.Set("gl", c.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var decoded serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("search error: %s", decoded.Error)
	}

	results := make([]Result, 0, len(decoded.OrganicResults))
	for _, r := range decoded.OrganicResults {
		results = append(results, Result{
			Title:   stripMarkup(r.Title),
			Snippet: stripMarkup(r.Snippet),
			Link:    r.Link,
		})
	}
	return results, nil
}

// stripMarkup removes any HTML tags from a result field. Search providers
// sometimes highlight query terms with <b>/<em> inside snippets.
func stripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
