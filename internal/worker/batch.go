// Package worker coordinates concurrency for batch verification and for
// source accessibility checks: documents are verified in parallel while
// each document's claims still run sequentially, and outbound checks are
// paced per evidence host.
package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/nsharda/veridia/internal/model"
)

// DocumentVerifier verifies a single text.
type DocumentVerifier interface {
	Verify(ctx context.Context, text string) (*model.Report, error)
}

// VerifyResult is the outcome of one document verification.
type VerifyResult struct {
	Index  int
	Text   string
	Report *model.Report
	Error  error
}

// BatchProcessor verifies multiple documents concurrently. Each document
// still runs its own claims sequentially.
type BatchProcessor struct {
	verifier    DocumentVerifier
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(verifier DocumentVerifier, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// ProcessTexts verifies all texts and returns one result per input, in
// input order. Workers pull indices from a shared queue and write into
// their own slot, so results never need re-sorting.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, texts []string) []*VerifyResult {
	if len(texts) == 0 {
		return []*VerifyResult{}
	}

	workers := b.concurrency
	if workers > len(texts) {
		workers = len(texts)
	}

	queue := make(chan int)
	results := make([]*VerifyResult, len(texts))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				report, err := b.verifier.Verify(ctx, texts[i])
				results[i] = &VerifyResult{Index: i, Text: texts[i], Report: report, Error: err}
			}
		}()
	}

feed:
	for i := range texts {
		select {
		case <-ctx.Done():
			break feed
		case queue <- i:
		}
	}
	close(queue)
	wg.Wait()

	// Texts never dispatched because the context ended still get a slot.
	for i, r := range results {
		if r == nil {
			results[i] = &VerifyResult{Index: i, Text: texts[i], Error: ctx.Err()}
		}
	}
	return results
}

// ReadTextsFile reads input texts from a file, one per line, skipping
// blank lines and '#' comments.
func ReadTextsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var texts []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	return texts, nil
}
