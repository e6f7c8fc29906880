package cli

import (
	"fmt"
	"os"

	"github.com/nsharda/veridia/internal/annotate"
	"github.com/nsharda/veridia/internal/cache"
	"github.com/nsharda/veridia/internal/embed"
	"github.com/nsharda/veridia/internal/extract"
	"github.com/nsharda/veridia/internal/model"
	"github.com/nsharda/veridia/internal/pipeline"
	"github.com/nsharda/veridia/internal/score"
	"github.com/nsharda/veridia/internal/search"
	"github.com/nsharda/veridia/internal/verdict"
)

// buildVerifier wires the verification pipeline from configuration.
// A missing search API key is fatal; a missing or failing embedder is
// reported once and degrades the verifier so every verdict is Fake.
func buildVerifier(cfg *model.Config) (*pipeline.Verifier, error) {
	if cfg.Search.APIKey == "" {
		cfg.Search.APIKey = os.Getenv("SERPAPI_API_KEY")
	}
	if cfg.Search.APIKey == "" {
		return nil, fmt.Errorf("SERPAPI_API_KEY environment variable not set")
	}
	if cfg.Embedder.APIKey == "" {
		cfg.Embedder.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	store := cache.New(cfg.Cache)

	var provider search.Provider = search.NewSerpClient(
		cfg.Search.APIKey, cfg.Search.BaseURL,
		cfg.Search.Language, cfg.Search.Country,
		cfg.Search.Timeout, cfg.Search.RatePerSec,
	)
	if cfg.Cache.Enabled {
		provider = search.NewCachedProvider(provider, store, cfg.Cache.TTL)
	}

	var scorer *score.Scorer
	embedder, err := embed.New(cfg.Embedder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: embedder unavailable, all verdicts will be Fake: %v\n", err)
	} else {
		if cfg.Cache.Enabled {
			embedder = embed.NewCachedEmbedder(embedder, store, cfg.Cache.TTL)
		}
		scorer = score.NewScorer(embedder, cfg.Scoring, cfg.Search.MaxSnippets)
	}

	annotator := annotate.NewHTTPAnnotator(cfg.Annotator.BaseURL, cfg.Annotator.Timeout)

	return pipeline.NewVerifier(
		extract.NewClaimExtractor(annotator),
		search.NewQueryBuilder(cfg.Search.SiteRules),
		provider,
		scorer,
		verdict.NewAggregator(cfg.Scoring.SimilarityThreshold),
		cfg,
	), nil
}
