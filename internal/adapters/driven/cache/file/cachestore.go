// Package file provides a JSON file implementation of the feature
// cache. The on-disk shape is a JSON array of objects with a
// "page_content" string and a "metadata" mapping mirroring the parsed
// fields, preserving record order and non-ASCII characters.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
)

// Ensure CacheStore implements the interface.
var _ driven.FeatureCache = (*CacheStore)(nil)

// cacheEntry is the on-disk mirror of one FeatureRecord.
type cacheEntry struct {
	PageContent string        `json:"page_content"`
	Metadata    cacheMetadata `json:"metadata"`
}

// cacheMetadata holds the structured fields of a record. Fixed-shape
// rather than an open map so missing-field behaviour is explicit.
type cacheMetadata struct {
	Source      string `json:"source"`
	FeatureName string `json:"feature_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

// CacheStore is a JSON file-backed implementation of driven.FeatureCache.
type CacheStore struct {
	path string
}

// NewCacheStore creates a cache store at the given path. The file is
// created on the first Save.
func NewCacheStore(path string) *CacheStore {
	return &CacheStore{path: path}
}

// Path returns the cache file path.
func (s *CacheStore) Path() string {
	return s.path
}

// Load reads all cached records in their original order.
func (s *CacheStore) Load(_ context.Context) ([]domain.FeatureRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var entries []cacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}

	records := make([]domain.FeatureRecord, len(entries))
	for i, e := range entries {
		records[i] = domain.FeatureRecord{
			RawText:     e.PageContent,
			Source:      e.Metadata.Source,
			FeatureName: e.Metadata.FeatureName,
			Category:    e.Metadata.Category,
			Description: e.Metadata.Description,
			Value:       e.Metadata.Value,
		}
	}
	return records, nil
}

// Save overwrites the cache file with the given records.
func (s *CacheStore) Save(_ context.Context, records []domain.FeatureRecord) error {
	entries := make([]cacheEntry, len(records))
	for i, r := range records {
		entries[i] = cacheEntry{
			PageContent: r.RawText,
			Metadata: cacheMetadata{
				Source:      r.Source,
				FeatureName: r.FeatureName,
				Category:    r.Category,
				Description: r.Description,
				Value:       r.Value,
			},
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	// Keep non-ASCII content readable in the file.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	return nil
}

// ModTime returns the cache file's modification time, or the zero
// time if the cache does not exist.
func (s *CacheStore) ModTime() time.Time {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
