package ai

import "context"

// Embedder turns text into a vector for similarity ranking. Implementations
// must be deterministic for identical input within one process lifetime.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Client is the full intelligence surface: free-text generation for
// transcript summaries plus embeddings for note search.
type Client interface {
	Embedder
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
