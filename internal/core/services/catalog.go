package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
	"github.com/segmint-labs/featselect-cli/internal/core/ports/driving"
	"github.com/segmint-labs/featselect-cli/internal/featurerow"
	"github.com/segmint-labs/featselect-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.FeatureCatalog = (*CatalogService)(nil)

// DefaultBatchSize is how many record texts are embedded per request.
const DefaultBatchSize = 128

// CatalogService owns the parsed feature records and their vector
// index for the lifetime of the process. It is constructed once and
// passed by reference; there is no hidden global state.
type CatalogService struct {
	sourcePath string
	extractor  driven.TextExtractor
	cache      driven.FeatureCache
	embedder   driven.EmbeddingService
	index      driven.VectorIndex

	limiter   *rate.Limiter
	batchSize int

	mu      sync.Mutex
	records []domain.FeatureRecord
	byID    map[string]domain.FeatureRecord
	loaded  bool
}

// NewCatalogService creates a catalog over the given source document.
func NewCatalogService(
	sourcePath string,
	extractor driven.TextExtractor,
	cache driven.FeatureCache,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
) *CatalogService {
	return &CatalogService{
		sourcePath: sourcePath,
		extractor:  extractor,
		cache:      cache,
		embedder:   embedder,
		index:      index,
		// Two embedding batches per second keeps a full reindex of
		// ~1500 rows under provider rate limits.
		limiter:   rate.NewLimiter(rate.Limit(2), 1),
		batchSize: DefaultBatchSize,
	}
}

// SetBatchSize overrides the embedding batch size.
func (s *CatalogService) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

// Load runs the cache validity policy, parses the source document if
// needed, and builds the vector index. A missing source document
// leaves the index empty and is not an error. Calling Load on an
// already loaded catalog is a no-op.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx, false)
}

// Rebuild forces a fresh parse of the source document, bypassing the
// cache, then re-embeds and re-indexes.
func (s *CatalogService) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, true)
}

// Query embeds the text and returns up to k matches ordered by
// decreasing similarity. The catalog loads itself lazily on the
// first query.
func (s *CatalogService) Query(ctx context.Context, text string, k int) ([]domain.FeatureMatch, error) {
	s.mu.Lock()
	if !s.loaded {
		if err := s.loadLocked(ctx, false); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	byID := s.byID
	s.mu.Unlock()

	if s.index == nil || s.index.Len() == 0 {
		logger.Debug("Query against empty index, returning no matches")
		return []domain.FeatureMatch{}, nil
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	logger.Debug("Generating query embedding for %q", text)
	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.index.Query(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	logger.Debug("Index returned %d hits", len(hits))

	matches := make([]domain.FeatureMatch, 0, len(hits))
	for _, hit := range hits {
		rec, ok := byID[hit.ID]
		if !ok {
			continue
		}
		matches = append(matches, domain.FeatureMatch{
			Record:     rec,
			Similarity: hit.Similarity,
		})
	}
	return matches, nil
}

// Records returns the loaded records in document order.
func (s *CatalogService) Records() []domain.FeatureRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FeatureRecord, len(s.records))
	copy(out, s.records)
	return out
}

// IndexSize returns the number of indexed records.
func (s *CatalogService) IndexSize() int {
	if s.index == nil {
		return 0
	}
	return s.index.Len()
}

// loadLocked performs the load pipeline. Caller must hold s.mu.
func (s *CatalogService) loadLocked(ctx context.Context, force bool) error {
	logger.Section("Catalog Load")

	sourceMod := fileModTime(s.sourcePath)
	sourceExists := !sourceMod.IsZero()

	var records []domain.FeatureRecord

	if !force && s.cacheValid(sourceExists, sourceMod) {
		logger.Debug("Cache is fresh, loading records from cache")
		cached, err := s.cache.Load(ctx)
		if err != nil {
			// Corrupt or unreadable cache is a cache miss, never fatal.
			logger.Warn("Cache load failed, falling back to document parse: %v", err)
		} else {
			logger.Info("Loaded %d records from cache", len(cached))
			records = cached
		}
	}

	if len(records) == 0 {
		if !sourceExists {
			logger.Warn("Source document not found: %s. Index stays empty.", s.sourcePath)
			return s.installLocked(ctx, nil, nil, nil)
		}

		parsed, err := s.parseSource(ctx)
		if err != nil {
			return err
		}
		records = parsed

		if len(records) == 0 {
			logger.Warn("No feature rows parsed from %s", s.sourcePath)
		} else if s.cache != nil {
			if err := s.cache.Save(ctx, records); err != nil {
				logger.Warn("Cache save failed: %v", err)
			} else {
				logger.Info("Saved %d records to cache", len(records))
			}
		}
	}

	if len(records) == 0 {
		return s.installLocked(ctx, nil, nil, nil)
	}

	ids, vectors, err := s.embedRecords(ctx, records)
	if err != nil {
		return err
	}

	if err := s.installLocked(ctx, records, ids, vectors); err != nil {
		return err
	}
	logger.Info("Built vector index with %d records", len(records))
	return nil
}

// parseSource extracts the source document text and decodes its
// feature rows. Malformed lines are skipped inside ParseText.
func (s *CatalogService) parseSource(ctx context.Context) ([]domain.FeatureRecord, error) {
	logger.Debug("Parsing source document: %s", s.sourcePath)

	pages, err := s.extractor.Extract(ctx, s.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", s.sourcePath, err)
	}
	logger.Debug("Extracted %d pages", len(pages))

	text := strings.Join(pages, "\n")
	records := featurerow.ParseText(text, s.sourcePath)
	logger.Info("Parsed %d feature rows", len(records))
	return records, nil
}

// embedRecords embeds every record's raw text in rate-limited batches.
func (s *CatalogService) embedRecords(ctx context.Context, records []domain.FeatureRecord) ([]string, [][]float32, error) {
	if s.embedder == nil {
		return nil, nil, domain.ErrEmbeddingUnavailable
	}

	ids := make([]string, len(records))
	texts := make([]string, len(records))
	for i, rec := range records {
		ids[i] = uuid.NewString()
		texts[i] = rec.RawText
	}

	vectors := make([][]float32, 0, len(records))
	for start := 0; start < len(texts); start += s.batchSize {
		end := start + s.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("rate limit wait: %w", err)
		}

		logger.Debug("Embedding batch %d-%d of %d", start, end, len(texts))
		batch, err := s.embedder.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, nil, fmt.Errorf("embed records %d-%d: %w", start, end, err)
		}
		vectors = append(vectors, batch...)
	}
	return ids, vectors, nil
}

// installLocked swaps in a new record set and index state.
// Caller must hold s.mu.
func (s *CatalogService) installLocked(ctx context.Context, records []domain.FeatureRecord, ids []string, vectors [][]float32) error {
	if s.index == nil {
		return domain.ErrIndexUnavailable
	}
	if err := s.index.Build(ctx, ids, vectors); err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	byID := make(map[string]domain.FeatureRecord, len(records))
	for i, id := range ids {
		byID[id] = records[i]
	}

	s.records = records
	s.byID = byID
	s.loaded = true
	return nil
}

// cacheValid applies the freshness policy: the cache may be used only
// when the source document exists, the cache file exists, and the
// cache is at least as new as the source.
func (s *CatalogService) cacheValid(sourceExists bool, sourceMod time.Time) bool {
	if s.cache == nil || !sourceExists {
		return false
	}
	cacheMod := s.cache.ModTime()
	if cacheMod.IsZero() {
		return false
	}
	return !cacheMod.Before(sourceMod)
}

// fileModTime returns the file's modification time, or the zero time
// if the file does not exist.
func fileModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
