// Package embed defines the sentence embedding boundary: a black-box
// text-to-vector function used for semantic similarity between claims
// and evidence snippets.
package embed

import (
	"context"
	"fmt"
	"math"

	"github.com/nsharda/veridia/internal/model"
)

// Embedder encodes texts into fixed-dimension vectors. Encoding a batch
// returns one vector per input in the same order. Encoding must be
// deterministic for a loaded model version so cached vectors stay valid.
type Embedder interface {
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}

// New creates an embedder from configuration.
func New(cfg model.EmbedderConfig) (Embedder, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIEmbedder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedder provider: %s (supported: openai)", cfg.Provider)
	}
}

// Cosine computes the cosine similarity between two vectors. Returns 0
// for mismatched dimensions or zero vectors.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
