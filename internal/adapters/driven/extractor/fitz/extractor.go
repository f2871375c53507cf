// Package fitz provides PDF text extraction backed by MuPDF via
// go-fitz. Text is returned page by page in document order.
package fitz

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor extracts text from PDF documents.
type Extractor struct{}

// New creates a new PDF text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the text of every page in document order.
func (e *Extractor) Extract(ctx context.Context, path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := doc.Text(n)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", n+1, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
