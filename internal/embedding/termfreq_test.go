package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermFreqEmbedder_Deterministic(t *testing.T) {
	texts := []string{
		"python machine learning engineer",
		"sql data analyst",
		"python sql developer",
	}
	e := NewTermFreqEmbedder()

	a, err := e.Encode(context.Background(), texts)
	require.NoError(t, err)
	b, err := e.Encode(context.Background(), texts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestTermFreqEmbedder_UnitVectors(t *testing.T) {
	e := NewTermFreqEmbedder()
	vectors, err := e.Encode(context.Background(), []string{
		"python developer",
		"sql analyst with python",
	})
	require.NoError(t, err)

	for _, v := range vectors {
		var sum float64
		for _, x := range v {
			sum += x * x
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestTermFreqEmbedder_SharedTermsIncreaseSimilarity(t *testing.T) {
	e := NewTermFreqEmbedder()
	vectors, err := e.Encode(context.Background(), []string{
		"python machine learning with pandas",
		"python machine learning with numpy",
		"accounting and bookkeeping",
	})
	require.NoError(t, err)

	near := CosineSimilarity(vectors[0], vectors[1])
	far := CosineSimilarity(vectors[0], vectors[2])
	assert.Greater(t, near, far)
	assert.Equal(t, 0.0, far)
}

func TestTermFreqEmbedder_EmptyText(t *testing.T) {
	e := NewTermFreqEmbedder()
	vectors, err := e.Encode(context.Background(), []string{"", "python"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	// The empty document gets a zero vector; cosine against it is defined as 0.
	assert.Equal(t, 0.0, CosineSimilarity(vectors[0], vectors[1]))
}

func TestCosineSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CosineSimilarity([]float64{1, 0}, []float64{1, 0}))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{0, 1}))
	assert.Equal(t, -1.0, CosineSimilarity([]float64{1, 0}, []float64{-1, 0}))

	// Mismatched dimensions and zero vectors degrade to 0.
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1}, []float64{1, 0}))
	assert.Equal(t, 0.0, CosineSimilarity([]float64{0, 0}, []float64{1, 0}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
}
