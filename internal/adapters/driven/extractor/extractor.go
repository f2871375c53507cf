// Package extractor selects a text extractor for a source document
// based on its file extension.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/segmint-labs/featselect-cli/internal/adapters/driven/extractor/fitz"
	"github.com/segmint-labs/featselect-cli/internal/adapters/driven/extractor/plaintext"
	"github.com/segmint-labs/featselect-cli/internal/core/domain"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
)

// ForPath returns the extractor handling the document at path.
func ForPath(path string) (driven.TextExtractor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fitz.New(), nil
	case ".txt", ".text":
		return plaintext.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filepath.Ext(path))
	}
}
