package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nsharda/veridia/internal/model"
	"github.com/nsharda/veridia/internal/validate"
	"github.com/spf13/cobra"
)

var (
	outJSON       string
	timeout       time.Duration
	threshold     float64
	annotatorURL  string
	noCache       bool
	checkSources  bool
	embedderModel string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <text>",
	Short: "Verify a factual statement against web evidence",
	Long: `Verify extracts verifiable claims from the given text, searches the
web for each claim, scores the retrieved snippets for semantic similarity
and source trust, and prints a Real/Fake verdict with the supporting
confirm/contradict counts per claim.

Example:
  veridia verify "The Earth orbits around the Sun."
  veridia verify "Mukesh Ambani visited Paris" --json report.json
  veridia verify "..." --threshold 0.65 --check-sources`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	verifyCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall verification timeout")
	verifyCmd.Flags().Float64Var(&threshold, "threshold", 0.5, "minimum cosine similarity for strong evidence")
	verifyCmd.Flags().StringVar(&annotatorURL, "annotator", "", "annotator service base URL (overrides config)")
	verifyCmd.Flags().StringVar(&embedderModel, "embedder-model", "", "embedding model name (overrides config)")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search/embedding cache")
	verifyCmd.Flags().BoolVar(&checkSources, "check-sources", false, "check evidence URL accessibility (informational)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	text := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := configFromFlags(cmd)

	verifier, err := buildVerifier(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying: %s\n", text)
		fmt.Fprintf(os.Stderr, "Similarity threshold: %.2f\n\n", cfg.Scoring.SimilarityThreshold)
	}

	report, err := verifier.Verify(ctx, text)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if checkSources {
		checkReportSources(ctx, cfg, report)
	}

	renderReport(report)

	if outJSON != "" {
		if err := writeJSON(report, outJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}

	return nil
}

// configFromFlags builds the effective configuration for verification
// commands: defaults, then the config file and environment via viper,
// then explicit flag overrides on top.
func configFromFlags(cmd *cobra.Command) *model.Config {
	cfg := loadConfig()
	if cmd.Flags().Changed("threshold") {
		cfg.Scoring.SimilarityThreshold = threshold
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	cfg.Output.Verbose = verbose
	if annotatorURL != "" {
		cfg.Annotator.BaseURL = annotatorURL
	}
	if embedderModel != "" {
		cfg.Embedder.Model = embedderModel
	}
	return cfg
}

// checkReportSources HEAD-checks the evidence URLs behind the report.
// Purely informational: the verdict is already final at this point.
func checkReportSources(ctx context.Context, cfg *model.Config, report *model.Report) {
	seen := make(map[string]bool)
	var urls []string
	for _, res := range report.Results {
		for _, sig := range res.Signals {
			if sig.Link != "" && !seen[sig.Link] {
				seen[sig.Link] = true
				urls = append(urls, sig.Link)
			}
		}
	}
	if len(urls) == 0 {
		return
	}

	checker := validate.NewSourceChecker(10*time.Second, cfg.Concurrency.CheckWorkers)
	report.Sources = checker.Check(ctx, urls)
}

// renderReport prints the human-readable verdict summary to stdout.
func renderReport(report *model.Report) {
	fmt.Printf("Verdict: %s\n", report.Verdict)
	fmt.Printf("Claims:  %d", len(report.Claims))
	if report.Skipped > 0 {
		fmt.Printf(" (%d skipped after first Fake)", report.Skipped)
	}
	fmt.Println()

	if report.Degraded {
		fmt.Println("Note: embedder unavailable, no scoring was attempted.")
	}

	for _, res := range report.Results {
		fmt.Printf("  [%s] %q  confirms=%d contradicts=%d", res.Verdict, res.Claim.Text, res.Confirms, res.Contradicts)
		if res.NoEvidence {
			fmt.Printf("  (no evidence)")
		}
		fmt.Println()
	}

	if len(report.Sources) > 0 {
		accessible := 0
		for _, s := range report.Sources {
			if s.IsAccessible {
				accessible++
			}
		}
		fmt.Printf("Sources: %d/%d accessible\n", accessible, len(report.Sources))
	}
}

// writeJSON renders the report to a JSON file.
func writeJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
