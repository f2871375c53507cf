// Package plaintext provides text extraction for plain-text source
// documents. The whole file is treated as a single page.
package plaintext

import (
	"context"
	"fmt"
	"os"

	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor extracts text from plain-text documents.
type Extractor struct{}

// New creates a new plain-text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the file content as a single page.
func (e *Extractor) Extract(_ context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return []string{string(data)}, nil
}
