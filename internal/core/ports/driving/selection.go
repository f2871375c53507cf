package driving

import (
	"context"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
)

// SelectionService turns campaign parameters into a ranked list of
// selected features. This is the operation exposed to the
// presentation layer.
type SelectionService interface {
	// SelectFeatures builds one query string from the keywords and
	// product name, runs it against the feature catalog, and maps
	// the hits into SelectedFeatures, most-similar first.
	//
	// An empty catalog yields an empty slice and no error.
	// Embedding provider failures propagate unwrapped apart from
	// context.
	SelectFeatures(ctx context.Context, keywords []string, productName string) ([]domain.SelectedFeature, error)

	// SelectForPlan is a convenience wrapper deriving the query
	// terms from a MarketingPlan.
	SelectForPlan(ctx context.Context, plan domain.MarketingPlan) ([]domain.SelectedFeature, error)
}
