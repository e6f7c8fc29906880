// Package pipeline orchestrates the verification flow: text to claims,
// claims to queries, retrieved snippets to signals, signals to verdicts.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nsharda/veridia/internal/extract"
	"github.com/nsharda/veridia/internal/model"
	"github.com/nsharda/veridia/internal/score"
	"github.com/nsharda/veridia/internal/search"
	"github.com/nsharda/veridia/internal/verdict"
)

// Verifier runs the claim verification pipeline for one text at a time.
// All collaborators are injected; the verifier holds no global state and
// is safe for reuse across documents.
type Verifier struct {
	extractor  *extract.ClaimExtractor
	queries    *search.QueryBuilder
	provider   search.Provider
	scorer     *score.Scorer // nil when the embedder is unavailable
	aggregator *verdict.Aggregator
	cfg        *model.Config
}

// NewVerifier wires the pipeline. A nil scorer marks the degraded mode
// where no scoring is attempted and every verdict is Fake; the caller is
// expected to have reported the missing embedder once at startup.
func NewVerifier(extractor *extract.ClaimExtractor, queries *search.QueryBuilder, provider search.Provider, scorer *score.Scorer, aggregator *verdict.Aggregator, cfg *model.Config) *Verifier {
	return &Verifier{
		extractor:  extractor,
		queries:    queries,
		provider:   provider,
		scorer:     scorer,
		aggregator: aggregator,
		cfg:        cfg,
	}
}

// Verify evaluates one text. Claims are processed sequentially in
// extraction order, each with one retrieval call and one batched
// embedding call. The loop short-circuits on the first Fake claim or the
// first claim with no usable evidence, since later claims cannot change
// the document verdict.
func (v *Verifier) Verify(ctx context.Context, text string) (*model.Report, error) {
	report := &model.Report{
		Text:       text,
		VerifiedAt: time.Now().UTC(),
		Verdict:    model.VerdictFake,
	}

	entities, err := v.extractor.Entities(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract entities: %w", err)
	}
	report.Entities = entities

	claims, err := v.extractor.Claims(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}
	report.Claims = claims

	// No claims means nothing to verify: conservative default.
	if len(claims) == 0 {
		return report, nil
	}

	if v.scorer == nil {
		report.Degraded = true
		return report, nil
	}

	verdicts := make([]model.Verdict, 0, len(claims))
	for i, claim := range claims {
		result := v.verifyClaim(ctx, claim, entities)
		report.Results = append(report.Results, result)
		verdicts = append(verdicts, result.Verdict)

		if v.cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "  claim %d/%d: %q => %s (confirms=%d contradicts=%d)\n",
				i+1, len(claims), claim.Text, result.Verdict, result.Confirms, result.Contradicts)
		}

		if result.Verdict == model.VerdictFake {
			report.Skipped = len(claims) - i - 1
			break
		}
	}

	report.Verdict = verdict.ForDocument(verdicts)
	return report, nil
}

// verifyClaim runs retrieval and scoring for a single claim. Provider
// errors and empty result sets both collapse to "no evidence", which the
// aggregator resolves to Fake; nothing at this level is fatal.
func (v *Verifier) verifyClaim(ctx context.Context, claim model.Claim, entities model.EntityBag) model.ClaimResult {
	result := model.ClaimResult{
		Claim:   claim,
		Verdict: model.VerdictFake,
	}

	result.Query = v.queries.Build(claim.Text, entities)

	results, err := v.provider.Search(ctx, result.Query)
	if err != nil || len(results) == 0 {
		if err != nil && v.cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "  search failed for %q: %v\n", claim.Text, err)
		}
		result.NoEvidence = true
		return result
	}

	// The provider's ranking is authoritative: only the head of the list
	// is considered, even when some of those results carry no usable text.
	if max := v.cfg.Search.MaxSnippets; max > 0 && len(results) > max {
		results = results[:max]
	}

	snippets := make([]model.SnippetRecord, 0, len(results))
	for _, r := range results {
		text := joinNonEmpty(r.Snippet, r.Title)
		if text == "" {
			continue
		}
		snippets = append(snippets, model.SnippetRecord{Text: text, Link: r.Link})
	}
	if len(snippets) == 0 {
		result.NoEvidence = true
		return result
	}

	signals, err := v.scorer.Score(ctx, claim.Text, snippets,
		v.cfg.Scoring.SimilarityThreshold, v.cfg.Scoring.ContradictionThreshold)
	if err != nil {
		// Worst-case signal: scoring failure counts as no evidence.
		if v.cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "  scoring failed for %q: %v\n", claim.Text, err)
		}
		result.NoEvidence = true
		return result
	}

	result.Signals = signals
	result.Verdict, result.Confirms, result.Contradicts = v.aggregator.ForClaim(signals)
	return result
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
