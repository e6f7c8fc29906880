// Package search defines the evidence retrieval boundary: query
// construction and the web search provider returning ranked results.
package search

import "context"

// Result is one ranked search result record.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Provider executes a query against a web search engine and returns
// results in relevance order. The provider's ranking is trusted as-is.
// An empty slice or an error both mean "no evidence".
type Provider interface {
	Search(ctx context.Context, query string) ([]Result, error)
}
