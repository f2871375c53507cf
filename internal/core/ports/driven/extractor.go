package driven

import "context"

// TextExtractor extracts textual content from a source document.
// Each implementation handles one document type (PDF, plain text).
type TextExtractor interface {
	// Extract returns the text of every page in document order.
	// Pages are concatenated by the caller with line breaks
	// preserved between them.
	Extract(ctx context.Context, path string) ([]string, error)
}
