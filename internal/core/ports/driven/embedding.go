package driven

import "context"

// EmbeddingService generates dense vector embeddings from text.
// This is an optional service - when nil, semantic keyword ranking and
// document similarity are disabled and frequency fallbacks apply.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text)
//   - OpenAI (text-embedding-3-small)
//   - Local sentence-embedding models behind inference servers
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	// This is used at startup to verify connectivity before committing to semantic mode.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
