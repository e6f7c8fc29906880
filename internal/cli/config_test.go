package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nsharda/veridia/internal/model"
	"github.com/nsharda/veridia/internal/score"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// useConfigFile points the global viper at a throwaway config file.
func useConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("read config: %v", err)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	useConfigFile(t, `scoring:
  similarity_threshold: 0.65
  reliable_domains:
    - factcheck.example.org
`)

	cfg := loadConfig()

	if cfg.Scoring.SimilarityThreshold != 0.65 {
		t.Errorf("expected threshold 0.65 from config file, got %v", cfg.Scoring.SimilarityThreshold)
	}
	if len(cfg.Scoring.ReliableDomains) != 1 || cfg.Scoring.ReliableDomains[0] != "factcheck.example.org" {
		t.Errorf("expected reliable_domains replaced by config file, got %v", cfg.Scoring.ReliableDomains)
	}

	// Keys the file does not mention keep their defaults.
	if len(cfg.Scoring.NegationCues) == 0 {
		t.Error("expected default negation cues preserved")
	}
	if cfg.Search.MaxSnippets != 5 {
		t.Errorf("expected default max_snippets 5, got %d", cfg.Search.MaxSnippets)
	}
}

// unitEmbedder maps every text to the same unit vector, so similarity is
// always 1 and only source trust decides the classification.
type unitEmbedder struct{}

func (unitEmbedder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func TestConfigFileReliableDomainsReachScorer(t *testing.T) {
	useConfigFile(t, `scoring:
  reliable_domains:
    - factcheck.example.org
`)

	cfg := loadConfig()
	scorer := score.NewScorer(unitEmbedder{}, cfg.Scoring, cfg.Search.MaxSnippets)

	signals, err := scorer.Score(context.Background(), "some claim",
		[]model.SnippetRecord{
			{Text: "matching evidence", Link: "https://factcheck.example.org/a"},
			{Text: "matching evidence", Link: "https://www.bbc.com/b"},
		},
		cfg.Scoring.SimilarityThreshold, cfg.Scoring.ContradictionThreshold)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if signals[0].Class != model.SignalConfirm {
		t.Errorf("domain from the config file should confirm, got %s", signals[0].Class)
	}
	if signals[1].Class != model.SignalNeutral {
		t.Errorf("domain absent from the configured list should be neutral, got %s", signals[1].Class)
	}
}

func TestConfigFromFlags_ThresholdPrecedence(t *testing.T) {
	useConfigFile(t, `scoring:
  similarity_threshold: 0.65
`)

	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&threshold, "threshold", 0.5, "")

	// Flag left at its default: the config file value wins.
	if got := configFromFlags(cmd).Scoring.SimilarityThreshold; got != 0.65 {
		t.Errorf("expected config file threshold 0.65, got %v", got)
	}

	// Flag set explicitly: it overrides the file.
	if err := cmd.Flags().Set("threshold", "0.7"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if got := configFromFlags(cmd).Scoring.SimilarityThreshold; got != 0.7 {
		t.Errorf("expected flag threshold 0.7, got %v", got)
	}
}
