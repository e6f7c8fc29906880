// Package verdict turns per-snippet evidence signals into claim and
// document verdicts.
package verdict

import "github.com/nsharda/veridia/internal/model"

// Aggregator applies the confirm/contradict counting policy. The policy
// is conservative: absent or weak evidence resolves to Fake.
type Aggregator struct {
	similarityThreshold float64
}

// NewAggregator creates an aggregator. The similarity threshold in force
// feeds the single-confirmation rule below.
func NewAggregator(similarityThreshold float64) *Aggregator {
	return &Aggregator{similarityThreshold: similarityThreshold}
}

// Counts tallies confirm and contradict signals.
func Counts(signals []model.SnippetSignal) (confirms, contradicts int) {
	for _, sig := range signals {
		switch sig.Class {
		case model.SignalConfirm:
			confirms++
		case model.SignalContradict:
			contradicts++
		}
	}
	return confirms, contradicts
}

// ForClaim derives a claim verdict from its signals:
//
//   - confirms dominate (c > d, c > 0): Real with c >= 2, or with a
//     single uncontradicted confirmation when the similarity threshold
//     was already above 0.6 (demanding very high similarity stands in
//     for a second confirmation). Anything weaker is Fake.
//   - any contradictions otherwise: Fake.
//   - no usable evidence: Fake.
func (a *Aggregator) ForClaim(signals []model.SnippetSignal) (model.Verdict, int, int) {
	confirms, contradicts := Counts(signals)

	switch {
	case confirms > contradicts && confirms > 0:
		if confirms >= 2 {
			return model.VerdictReal, confirms, contradicts
		}
		if confirms == 1 && contradicts == 0 && a.similarityThreshold > 0.6 {
			return model.VerdictReal, confirms, contradicts
		}
		return model.VerdictFake, confirms, contradicts
	case contradicts > 0:
		return model.VerdictFake, confirms, contradicts
	default:
		return model.VerdictFake, confirms, contradicts
	}
}

// ForDocument folds claim verdicts into one document verdict: Fake as
// soon as any claim is Fake, Real only when every claim held up. An empty
// set is Fake.
func ForDocument(verdicts []model.Verdict) model.Verdict {
	if len(verdicts) == 0 {
		return model.VerdictFake
	}
	for _, v := range verdicts {
		if v == model.VerdictFake {
			return model.VerdictFake
		}
	}
	return model.VerdictReal
}
