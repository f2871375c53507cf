package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driving"
	"github.com/segmint-labs/featselect-cli/internal/logger"
)

// Ensure SelectionService implements the interface.
var _ driving.SelectionService = (*SelectionService)(nil)

// DefaultResultCount is the number of features selected per query.
const DefaultResultCount = 10

// SelectionService turns campaign parameters into a ranked list of
// selected features using the feature catalog.
type SelectionService struct {
	catalog     driving.FeatureCatalog
	resultCount int
}

// NewSelectionService creates a new selection service.
func NewSelectionService(catalog driving.FeatureCatalog) *SelectionService {
	return &SelectionService{
		catalog:     catalog,
		resultCount: DefaultResultCount,
	}
}

// SetResultCount overrides the number of features selected per query.
func (s *SelectionService) SetResultCount(k int) {
	if k > 0 {
		s.resultCount = k
	}
}

// SelectFeatures builds one query string from the keywords and
// product name, runs it against the catalog, and maps the hits into
// SelectedFeatures, most-similar first.
func (s *SelectionService) SelectFeatures(
	ctx context.Context, keywords []string, productName string,
) ([]domain.SelectedFeature, error) {
	logger.Section("Feature Selection")

	terms := make([]string, 0, len(keywords)+1)
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			terms = append(terms, kw)
		}
	}
	if name := strings.TrimSpace(productName); name != "" {
		terms = append(terms, name)
	}

	query := strings.Join(terms, " ")
	logger.Debug("Query: %q", query)
	if query == "" {
		logger.Debug("Empty query, returning no selections")
		return []domain.SelectedFeature{}, nil
	}

	matches, err := s.catalog.Query(ctx, query, s.resultCount)
	if err != nil {
		return nil, fmt.Errorf("select features: %w", err)
	}
	logger.Info("Selected %d features", len(matches))

	selected := make([]domain.SelectedFeature, len(matches))
	for i, m := range matches {
		selected[i] = newSelectedFeature(m)
	}
	return selected, nil
}

// SelectForPlan derives the query terms from a MarketingPlan.
func (s *SelectionService) SelectForPlan(
	ctx context.Context, plan domain.MarketingPlan,
) ([]domain.SelectedFeature, error) {
	return s.SelectFeatures(ctx, strings.Split(plan.CampaignKeywords, ","), plan.ProductName)
}

// newSelectedFeature maps one catalog match into the user-facing
// shape: "[Category] FeatureName" plus a justification referencing
// the matched description and value.
func newSelectedFeature(m domain.FeatureMatch) domain.SelectedFeature {
	desc := m.Record.Description
	if desc == "" {
		desc = m.Record.RawText
	}
	return domain.SelectedFeature{
		Name:            m.Record.DisplayName(),
		Reason:          fmt.Sprintf("입력된 키워드와 '%s'(값: %s) 간의 연관성이 높음", desc, m.Record.Value),
		SimilarityScore: m.Similarity,
	}
}
