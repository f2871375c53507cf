package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// It is the sole source of "semantic" behaviour in the system: the
// index only compares the vectors this service produces.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
//
// Provider failures (missing credential, network error) are returned
// as-is. There is no retry and no fallback ranking; the caller of the
// query path sees the provider's own error.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 768, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. A missing credential surfaces here or on the first
	// Embed call, never at construction time.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
