package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultEmbeddingModel is the Gemini embedding model used when none is configured.
const defaultEmbeddingModel = "text-embedding-004"

// GeminiEmbedder encodes texts with the Gemini embedding API in a single
// batched request per Encode call.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a Gemini-backed embedder. An empty model selects
// the default embedding model.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Encode embeds all texts in one batched call, preserving input order.
// Vectors are normalized to unit length.
func (g *GeminiEmbedder) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	em := g.client.EmbeddingModel(g.model)

	batch := em.NewBatch()
	for _, t := range texts {
		batch = batch.AddContent(genai.Text(t))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, &EncodeError{Backend: "gemini", Cause: err}
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, &EncodeError{
			Backend: "gemini",
			Cause:   fmt.Errorf("got %d embeddings for %d texts", len(resp.Embeddings), len(texts)),
		}
	}

	vectors := make([][]float64, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		v := make([]float64, len(emb.Values))
		for j, x := range emb.Values {
			v[j] = float64(x)
		}
		normalizeUnit(v)
		vectors[i] = v
	}

	return vectors, nil
}

// Close releases the underlying API client.
func (g *GeminiEmbedder) Close() error {
	return g.client.Close()
}
