// Package score classifies retrieved evidence snippets against a claim,
// combining embedding similarity, source trust and negation cues.
package score

import (
	"context"
	"fmt"
	"strings"

	"github.com/nsharda/veridia/internal/embed"
	"github.com/nsharda/veridia/internal/model"
)

// maxSnippets caps how many ranked results are scored per claim. The
// provider's ranking is trusted, so only the head of the list matters.
const maxSnippets = 5

// Scorer classifies snippets as confirming, contradicting or neutral
// evidence for a claim.
type Scorer struct {
	embedder    embed.Embedder
	trust       *TrustClassifier
	cues        []string
	maxSnippets int
}

// NewScorer creates a scorer. maxPerClaim <= 0 falls back to the default
// cap of 5.
func NewScorer(embedder embed.Embedder, cfg model.ScoringConfig, maxPerClaim int) *Scorer {
	if maxPerClaim <= 0 {
		maxPerClaim = maxSnippets
	}

	cues := make([]string, len(cfg.NegationCues))
	for i, cue := range cfg.NegationCues {
		cues[i] = strings.ToLower(cue)
	}

	return &Scorer{
		embedder:    embedder,
		trust:       NewTrustClassifier(cfg.ReliableDomains, cfg.TrustHints),
		cues:        cues,
		maxSnippets: maxPerClaim,
	}
}

// Score classifies the snippets for a claim. The claim is encoded once
// and the snippet texts are batch-encoded once. Classification priority:
//
//  1. similarity >= threshold and trustworthy source:
//     negation cue present -> contradict, else confirm.
//  2. similarity > contradictThreshold, negation cue present and
//     trustworthy source -> contradict.
//  3. otherwise neutral.
//
// Trust gates both paths: high similarity from an untrusted source is
// no signal at all.
func (s *Scorer) Score(ctx context.Context, claim string, snippets []model.SnippetRecord, threshold, contradictThreshold float64) ([]model.SnippetSignal, error) {
	if len(snippets) > s.maxSnippets {
		snippets = snippets[:s.maxSnippets]
	}
	if len(snippets) == 0 {
		return nil, nil
	}

	texts := make([]string, 0, len(snippets)+1)
	texts = append(texts, claim)
	for _, sn := range snippets {
		texts = append(texts, sn.Text)
	}

	vectors, err := s.embedder.Encode(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("expected %d vectors, got %d", len(texts), len(vectors))
	}

	claimVec := vectors[0]
	signals := make([]model.SnippetSignal, 0, len(snippets))

	for i, sn := range snippets {
		similarity := embed.Cosine(claimVec, vectors[i+1])
		domain := Domain(sn.Link)

		signal := model.SnippetSignal{
			Link:        sn.Link,
			Domain:      domain,
			Similarity:  similarity,
			Reliable:    s.trust.IsReliable(domain),
			Trustworthy: s.trust.IsTrustworthy(domain),
			Negation:    s.hasNegationCue(sn.Text),
		}
		signal.Class = classify(signal, threshold, contradictThreshold)

		signals = append(signals, signal)
	}

	return signals, nil
}

// classify applies the decision priority to a single snippet's signal.
func classify(sig model.SnippetSignal, threshold, contradictThreshold float64) model.SignalClass {
	switch {
	case sig.Similarity >= threshold && sig.Trustworthy:
		if sig.Negation {
			return model.SignalContradict
		}
		return model.SignalConfirm
	case sig.Similarity > contradictThreshold && sig.Negation && sig.Trustworthy:
		// Denial language is informative even at moderate similarity,
		// provided the source is trustworthy.
		return model.SignalContradict
	default:
		return model.SignalNeutral
	}
}

// hasNegationCue tests the snippet text case-insensitively against the
// configured denial cues.
func (s *Scorer) hasNegationCue(text string) bool {
	lower := strings.ToLower(text)
	for _, cue := range s.cues {
		if cue != "" && strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}
