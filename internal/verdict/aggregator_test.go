package verdict

import (
	"testing"

	"github.com/nsharda/veridia/internal/model"
)

// signalsWith builds a signal list with the given confirm and contradict
// counts, padded with neutrals.
func signalsWith(confirms, contradicts, neutrals int) []model.SnippetSignal {
	var signals []model.SnippetSignal
	for i := 0; i < confirms; i++ {
		signals = append(signals, model.SnippetSignal{Class: model.SignalConfirm})
	}
	for i := 0; i < contradicts; i++ {
		signals = append(signals, model.SnippetSignal{Class: model.SignalContradict})
	}
	for i := 0; i < neutrals; i++ {
		signals = append(signals, model.SnippetSignal{Class: model.SignalNeutral})
	}
	return signals
}

func TestForClaim(t *testing.T) {
	tests := []struct {
		name        string
		threshold   float64
		confirms    int
		contradicts int
		want        model.Verdict
	}{
		{"two confirmations", 0.5, 2, 0, model.VerdictReal},
		{"many confirmations", 0.5, 4, 1, model.VerdictReal},
		{"single confirmation at default threshold", 0.5, 1, 0, model.VerdictFake},
		{"single confirmation at strict threshold", 0.65, 1, 0, model.VerdictReal},
		{"single confirmation at exactly 0.6", 0.6, 1, 0, model.VerdictFake},
		{"contradictions dominate", 0.5, 1, 3, model.VerdictFake},
		{"contradictions dominate regardless of confirms", 0.5, 2, 3, model.VerdictFake},
		{"balanced counts", 0.5, 1, 1, model.VerdictFake},
		{"no evidence", 0.5, 0, 0, model.VerdictFake},
		{"only neutrals", 0.5, 0, 0, model.VerdictFake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(tt.threshold)
			verdict, c, d := agg.ForClaim(signalsWith(tt.confirms, tt.contradicts, 2))

			if verdict != tt.want {
				t.Errorf("expected %s, got %s", tt.want, verdict)
			}
			if c != tt.confirms || d != tt.contradicts {
				t.Errorf("expected counts (%d, %d), got (%d, %d)", tt.confirms, tt.contradicts, c, d)
			}
		})
	}
}

func TestForClaim_EmptySignals(t *testing.T) {
	agg := NewAggregator(0.5)
	verdict, c, d := agg.ForClaim(nil)

	if verdict != model.VerdictFake {
		t.Errorf("expected Fake for no signals, got %s", verdict)
	}
	if c != 0 || d != 0 {
		t.Errorf("expected zero counts, got (%d, %d)", c, d)
	}
}

func TestForDocument(t *testing.T) {
	tests := []struct {
		name     string
		verdicts []model.Verdict
		want     model.Verdict
	}{
		{"no claims", nil, model.VerdictFake},
		{"all real", []model.Verdict{model.VerdictReal, model.VerdictReal}, model.VerdictReal},
		{"one fake", []model.Verdict{model.VerdictReal, model.VerdictFake, model.VerdictReal}, model.VerdictFake},
		{"single real", []model.Verdict{model.VerdictReal}, model.VerdictReal},
		{"single fake", []model.Verdict{model.VerdictFake}, model.VerdictFake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForDocument(tt.verdicts); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
