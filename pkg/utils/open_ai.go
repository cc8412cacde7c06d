package utils

import (
	"context"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// EmbeddingClientInterface turns free text into a fixed-dimension vector.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey, baseURL, model string) EmbeddingClientInterface {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = string(openai.SmallEmbedding3) // "text-embedding-3-small"
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.EmbeddingModel(model),
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embedding response contained no data")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

type dimensionCheckedClient struct {
	inner     EmbeddingClientInterface
	dimension int
}

// WithDimensionCheck rejects vectors whose length differs from the configured
// dimension; the vector columns are declared with that dimension and a
// mismatched write would only fail later, inside the database.
func WithDimensionCheck(inner EmbeddingClientInterface, dimension int) EmbeddingClientInterface {
	if dimension <= 0 {
		return inner
	}
	return &dimensionCheckedClient{inner: inner, dimension: dimension}
}

func (c *dimensionCheckedClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	vector, err := c.inner.GetEmbedding(ctx, text)
	if err != nil {
		return pgvector.Vector{}, err
	}
	if got := len(vector.Slice()); got != c.dimension {
		return pgvector.Vector{}, fmt.Errorf("embedding has dimension %d, expected %d", got, c.dimension)
	}
	return vector, nil
}
