package domain

import "fmt"

// Default field values used when a row omits a field.
const (
	// DefaultFeatureName is used when a row has no ID field.
	DefaultFeatureName = "Unknown"

	// DefaultValue is used when a row has no VAL field.
	DefaultValue = "0"
)

// FeatureRecord is one parsed row of the feature dictionary.
// It is immutable after construction: created during document parsing
// or cache deserialisation and held in memory for the process lifetime.
type FeatureRecord struct {
	// RawText is the original encoded line. It is the primary
	// searchable content and is what gets embedded.
	RawText string

	// Source is the path of the document the row was parsed from.
	Source string

	// FeatureName is the identifier parsed from the ID field.
	FeatureName string

	// Category is parsed from the CAT field.
	Category string

	// Description is parsed from the DESC field.
	Description string

	// Value is the string-encoded integer parsed from the VAL field.
	Value string
}

// DisplayName returns the user-facing name, combining category and
// feature name as "[Category] FeatureName".
func (r FeatureRecord) DisplayName() string {
	return fmt.Sprintf("[%s] %s", r.Category, r.FeatureName)
}

// FeatureMatch pairs a record with its similarity score from an
// index query. Results are ordered most-similar first.
type FeatureMatch struct {
	// Record is the matched feature record.
	Record FeatureRecord

	// Similarity is the cosine similarity score. Higher is more
	// similar; exact matches score close to 1.
	Similarity float64
}

// SelectedFeature is a user-facing selection produced per query.
// It is ephemeral and never persisted.
type SelectedFeature struct {
	// Name combines category and feature name for display.
	Name string `json:"name"`

	// Reason is a generated justification referencing the matched
	// description and value.
	Reason string `json:"reason"`

	// SimilarityScore is copied from the index hit.
	SimilarityScore float64 `json:"similarity_score"`
}
