package driving

import (
	"context"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
)

// FeatureCatalog owns the parsed feature records and their vector
// index for the lifetime of the process.
type FeatureCatalog interface {
	// Load runs the cache validity policy, parses the source
	// document if needed, and builds the vector index. A missing
	// source document leaves the index empty and is not an error.
	Load(ctx context.Context) error

	// Rebuild forces a fresh parse of the source document,
	// bypassing the cache, then re-embeds and re-indexes.
	Rebuild(ctx context.Context) error

	// Query embeds the text and returns up to k matches ordered by
	// decreasing similarity. An empty index yields an empty slice.
	// The catalog loads itself lazily on the first query.
	Query(ctx context.Context, text string, k int) ([]domain.FeatureMatch, error)

	// Records returns the loaded records in document order.
	Records() []domain.FeatureRecord

	// IndexSize returns the number of indexed records.
	IndexSize() int
}
