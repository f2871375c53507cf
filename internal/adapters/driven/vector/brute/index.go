// Package brute provides an in-memory vector index that answers kNN
// queries by scanning all vectors and scoring via cosine similarity.
// At catalog scale (a few thousand records) a linear scan is faster
// than maintaining an approximate structure.
package brute

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/segmint-labs/featselect-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index is a brute-force cosine similarity index.
type Index struct {
	mu   sync.RWMutex
	ids  []string
	vecs [][]float32
	mags []float64
	dim  int
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Build replaces the index contents and precomputes magnitudes.
func (i *Index) Build(_ context.Context, ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("brute: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if len(ids) == 0 {
		i.ids, i.vecs, i.mags, i.dim = nil, nil, nil, 0
		return nil
	}

	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("brute: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}

	mags := make([]float64, len(vectors))
	for j := range vectors {
		mags[j] = magnitude(vectors[j])
	}

	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.mags = mags
	i.dim = dim
	return nil
}

// Query returns the top-k entries by cosine similarity.
func (i *Index) Query(_ context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.dim == 0 || len(i.vecs) == 0 {
		return []driven.VectorHit{}, nil
	}
	if len(query) != i.dim {
		return nil, fmt.Errorf("brute: query dim %d != index dim %d", len(query), i.dim)
	}

	qm := magnitude(query)
	if qm == 0 {
		return []driven.VectorHit{}, nil
	}

	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		if i.mags[j] == 0 {
			continue
		}
		s := dot(query, i.vecs[j]) / (qm * i.mags[j])
		if math.IsNaN(s) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, score: s})
	}

	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })

	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}

	hits := make([]driven.VectorHit, k)
	for n := 0; n < k; n++ {
		hits[n] = driven.VectorHit{
			ID:         i.ids[scoreds[n].idx],
			Similarity: scoreds[n].score,
		}
	}
	return hits, nil
}

// Len returns the number of indexed entries.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.ids)
}

// Close releases resources.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ids, i.vecs, i.mags, i.dim = nil, nil, nil, 0
	return nil
}

func magnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}
	return math.Sqrt(sum)
}

func dot(a, b []float32) float64 {
	var sum float64
	for j := range a {
		sum += float64(a[j]) * float64(b[j])
	}
	return sum
}
