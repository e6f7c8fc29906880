package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/nsharda/veridia/internal/model"
	"github.com/nsharda/veridia/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple texts from a file in parallel",
	Long: `Batch verifies multiple texts concurrently:
- Read texts from input file (one per line, '#' comments skipped)
- Verify texts in parallel with configurable worker count
- Each text is still verified claim by claim, sequentially
- Optionally write an individual JSON report per text

Example:
  veridia batch statements.txt
  veridia batch statements.txt --concurrency 8 --output-dir ./reports
  veridia batch statements.txt --threshold 0.65`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for per-text JSON reports (optional)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().Float64Var(&threshold, "threshold", 0.5, "minimum cosine similarity for strong evidence")
	batchCmd.Flags().StringVar(&annotatorURL, "annotator", "", "annotator service base URL (overrides config)")
	batchCmd.Flags().StringVar(&embedderModel, "embedder-model", "", "embedding model name (overrides config)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search/embedding cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	texts, err := worker.ReadTextsFile(file)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return fmt.Errorf("no texts found in %s", file)
	}

	cfg := configFromFlags(cmd)
	cfg.Concurrency.Workers = concurrency

	verifier, err := buildVerifier(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Verifying %d texts with %d workers\n\n", len(texts), concurrency)

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	processor := worker.NewBatchProcessor(verifier, concurrency)
	results := processor.ProcessTexts(ctx, texts)

	real, fake, failed := 0, 0, 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Printf("[error] %q: %v\n", res.Text, res.Error)
			continue
		}

		switch res.Report.Verdict {
		case model.VerdictReal:
			real++
		default:
			fake++
		}
		fmt.Printf("[%s] %q (claims=%d)\n", res.Report.Verdict, res.Text, len(res.Report.Claims))

		if outputDir != "" {
			path := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", res.Index+1))
			if err := writeJSON(res.Report, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", path, err)
			}
		}
	}

	fmt.Printf("\nDone: %d real, %d fake, %d failed\n", real, fake, failed)
	return nil
}
