// Package embedding provides text-to-vector encoders behind a single
// interface: a Gemini-backed semantic embedder and an in-process term
// frequency fallback, so scoring never branches on which backend served a
// request.
package embedding

import (
	"context"
	"fmt"
	"math"
)

// Embedder converts a batch of texts into fixed-dimension vectors.
// Implementations must preserve input order and should return unit-length
// vectors so cosine similarity is well-defined.
type Embedder interface {
	Encode(ctx context.Context, texts []string) ([][]float64, error)
}

// EncodeError represents a failure of the embedding backend. It is fatal to
// the scoring run that triggered it: no ranking is meaningful without the
// similarity dimension.
type EncodeError struct {
	Backend string
	Cause   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("embedding backend %s failed: %v", e.Backend, e.Cause)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// CosineSimilarity returns the cosine of the angle between two vectors, or 0
// when either has zero magnitude or the dimensions differ.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// normalizeUnit scales a vector to unit length in place. Zero vectors are
// left unchanged.
func normalizeUnit(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	mag := math.Sqrt(sum)
	for i := range v {
		v[i] /= mag
	}
}
