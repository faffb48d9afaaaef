package gemini

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingClient produces embeddings through Gemini's OpenAI-compatible
// endpoint. All vectors returned by one deployment share the model's
// fixed dimensionality.
type EmbeddingClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewEmbeddingClient creates an embedding client. baseURL may be empty
// to use the default OpenAI endpoint; timeout bounds each request.
func NewEmbeddingClient(apiKey, baseURL, model string, timeout time.Duration) *EmbeddingClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &EmbeddingClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// EmbedBatch embeds all texts in a single request. On failure or timeout
// no partial result is returned; the caller treats the whole operation
// as failed and must not store a default vector.
func (c *EmbeddingClient) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response has %d vectors for %d texts", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, data := range resp.Data {
		embedding := make([]float32, len(data.Embedding))
		copy(embedding, data.Embedding)
		vectors[i] = embedding
	}

	// every vector in the batch must share one dimensionality
	for i := 1; i < len(vectors); i++ {
		if len(vectors[i]) != len(vectors[0]) {
			return nil, fmt.Errorf("embedding dimension mismatch in batch: %d vs %d", len(vectors[i]), len(vectors[0]))
		}
	}

	return vectors, nil
}
