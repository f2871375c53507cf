// Package featurerow encodes and decodes the line-oriented feature
// dictionary row format:
//
//	ID: <name> | CAT: <category> | DESC: <description> | VAL: <0-100>
//
// Fields are order-independent within the line but must be separated
// by " | ", and each field must be "key: value".
package featurerow

import (
	"fmt"
	"strings"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
)

// Field separators of the row format.
const (
	idMarker       = "ID: "
	fieldSeparator = " | "
)

// Field keys recognised in a row.
const (
	KeyID          = "ID"
	KeyCategory    = "CAT"
	KeyDescription = "DESC"
	KeyValue       = "VAL"
)

// IsFeatureRow reports whether a line is a candidate feature row.
// A row must contain both the "ID: " marker and at least one " | "
// separator; anything else is skipped by the parser.
func IsFeatureRow(line string) bool {
	return strings.Contains(line, idMarker) && strings.Contains(line, fieldSeparator)
}

// Parse decodes one line into a FeatureRecord. The second return
// value is false when the line is not a feature row at all.
//
// Segments without a ":" contribute no field but do not invalidate
// the row. Missing fields take their documented defaults.
func Parse(line, source string) (domain.FeatureRecord, bool) {
	if !IsFeatureRow(line) {
		return domain.FeatureRecord{}, false
	}

	fields := make(map[string]string, 4)
	for _, segment := range strings.Split(line, fieldSeparator) {
		key, val, found := strings.Cut(segment, ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	rec := domain.FeatureRecord{
		RawText:     line,
		Source:      source,
		FeatureName: domain.DefaultFeatureName,
		Category:    fields[KeyCategory],
		Description: fields[KeyDescription],
		Value:       domain.DefaultValue,
	}
	if name, ok := fields[KeyID]; ok {
		rec.FeatureName = name
	}
	if val, ok := fields[KeyValue]; ok {
		rec.Value = val
	}
	return rec, true
}

// ParseText decodes every feature row found in a block of text,
// preserving line order. Non-row lines are skipped silently.
func ParseText(text, source string) []domain.FeatureRecord {
	var records []domain.FeatureRecord
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := Parse(line, source); ok {
			records = append(records, rec)
		}
	}
	return records
}

// Format encodes a record back into the canonical row form. It is
// the inverse of Parse for rows carrying all four fields.
func Format(rec domain.FeatureRecord) string {
	return fmt.Sprintf("ID: %s | CAT: %s | DESC: %s | VAL: %s",
		rec.FeatureName, rec.Category, rec.Description, rec.Value)
}
