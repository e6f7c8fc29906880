package embed

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/nsharda/veridia/internal/cache"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"scaled", []float32{2, 0}, []float32{5, 0}, 1},
		{"mismatched dims", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// countingEmbedder counts texts encoded by the inner embedder
type countingEmbedder struct {
	encoded int
}

func (e *countingEmbedder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	e.encoded += len(texts)
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i])), 1}
	}
	return vectors, nil
}

func TestCachedEmbedder_ReusesVectors(t *testing.T) {
	inner := &countingEmbedder{}
	embedder := NewCachedEmbedder(inner, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
	ctx := context.Background()

	first, err := embedder.Encode(ctx, []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if inner.encoded != 2 {
		t.Fatalf("expected 2 texts encoded, got %d", inner.encoded)
	}

	// "beta" is cached; only "gamma" reaches the inner embedder.
	second, err := embedder.Encode(ctx, []string{"beta", "gamma"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if inner.encoded != 3 {
		t.Errorf("expected 1 additional text encoded, got total %d", inner.encoded)
	}

	if Cosine(first[1], second[0]) < 0.999 {
		t.Errorf("cached vector differs: %v vs %v", first[1], second[0])
	}
	if len(second) != 2 || second[1] == nil {
		t.Errorf("expected ordered vectors for all inputs, got %v", second)
	}
}
