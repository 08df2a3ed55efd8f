// Package semantic scores the similarity of two text blocks using vector
// embeddings and cosine similarity.
package semantic

import "context"

// Embedder generates a fixed-length vector representation of a text.
// It is the only network-dependent capability the matching engine touches;
// implementations can back it with a remote API or a local model.
type Embedder interface {
	// Embed returns a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbedderFunc adapts a plain function to the Embedder interface.
type EmbedderFunc func(ctx context.Context, text string) ([]float32, error)

// Embed calls the wrapped function.
func (f EmbedderFunc) Embed(ctx context.Context, text string) ([]float32, error) {
	return f(ctx, text)
}
