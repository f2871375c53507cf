package driven

import "context"

// VectorIndex provides similarity search over embedded records.
// The index is built once per catalog load and replaced wholesale on
// rebuild; there is no incremental mutation.
type VectorIndex interface {
	// Build replaces the index contents with the given ids and
	// vectors. ids[i] corresponds to vectors[i]. Passing empty
	// slices clears the index.
	Build(ctx context.Context, ids []string, vectors [][]float32) error

	// Query finds the k most similar entries to the query vector,
	// ordered by decreasing cosine similarity. Querying an empty or
	// never-built index returns an empty slice, not an error.
	Query(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Len returns the number of indexed entries.
	Len() int

	// Close releases resources.
	Close() error
}

// VectorHit represents a similarity search result.
type VectorHit struct {
	// ID identifies the matched entry.
	ID string

	// Similarity is the cosine similarity score. Higher is more
	// similar; the convention is fixed across implementations.
	Similarity float64
}
