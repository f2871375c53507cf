// Package domain defines the core business entities for featselect.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FeatureRecord: One parsed row of the feature dictionary
//   - FeatureMatch: A record paired with a similarity score
//   - SelectedFeature: A user-facing selection with a justification
//   - MarketingPlan: Campaign parameters driving a selection query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
