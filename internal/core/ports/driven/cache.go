package driven

import (
	"context"
	"time"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
)

// FeatureCache persists parsed feature records between runs so the
// source document does not have to be re-extracted on every start.
//
// The cache is a mirror, never the source of truth: the catalog
// service decides validity by comparing its modification time against
// the source document's and falls back to a fresh parse on any load
// error.
type FeatureCache interface {
	// Load reads all cached records in their original order.
	Load(ctx context.Context) ([]domain.FeatureRecord, error)

	// Save overwrites the cache with the given records,
	// preserving order and non-ASCII content.
	Save(ctx context.Context, records []domain.FeatureRecord) error

	// ModTime returns the cache file's modification time, or the
	// zero time if the cache does not exist.
	ModTime() time.Time
}
