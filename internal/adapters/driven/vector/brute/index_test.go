package brute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_EmptyIndex(t *testing.T) {
	idx := New()

	hits, err := idx.Query(context.Background(), []float32{1, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.Equal(t, 0, idx.Len())
}

func TestBuild_LengthMismatch(t *testing.T) {
	idx := New()

	err := idx.Build(context.Background(), []string{"a"}, [][]float32{{1, 0}, {0, 1}})
	assert.Error(t, err)
}

func TestBuild_InconsistentDims(t *testing.T) {
	idx := New()

	err := idx.Build(context.Background(), []string{"a", "b"}, [][]float32{{1, 0}, {0, 1, 0}})
	assert.Error(t, err)
}

func TestQuery_DimMismatch(t *testing.T) {
	idx := New()
	require.NoError(t, idx.Build(context.Background(), []string{"a"}, [][]float32{{1, 0}}))

	_, err := idx.Query(context.Background(), []float32{1, 0, 0}, 1)
	assert.Error(t, err)
}

func TestQuery_OrdersByDecreasingSimilarity(t *testing.T) {
	ctx := context.Background()
	idx := New()

	// "a" is aligned with the query, "b" is orthogonal, "c" is opposed.
	require.NoError(t, idx.Build(ctx,
		[]string{"a", "b", "c"},
		[][]float32{{1, 0}, {0, 1}, {-1, 0}},
	))

	hits, err := idx.Query(ctx, []float32{2, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "a", hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-9)
	assert.Equal(t, "b", hits[1].ID)
	assert.InDelta(t, 0.0, hits[1].Similarity, 1e-9)
	assert.Equal(t, "c", hits[2].ID)
	assert.InDelta(t, -1.0, hits[2].Similarity, 1e-9)
}

func TestQuery_ExactVectorIsTopHit(t *testing.T) {
	ctx := context.Background()
	idx := New()

	target := []float32{0.3, 0.7, 0.1}
	require.NoError(t, idx.Build(ctx,
		[]string{"x", "target", "y"},
		[][]float32{{0.9, 0.1, 0.5}, target, {0.2, 0.2, 0.9}},
	))

	hits, err := idx.Query(ctx, target, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "target", hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
}

func TestQuery_KLargerThanIndex(t *testing.T) {
	ctx := context.Background()
	idx := New()
	require.NoError(t, idx.Build(ctx, []string{"a", "b"}, [][]float32{{1, 0}, {0, 1}}))

	hits, err := idx.Query(ctx, []float32{1, 1}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestQuery_ZeroMagnitudeQuery(t *testing.T) {
	ctx := context.Background()
	idx := New()
	require.NoError(t, idx.Build(ctx, []string{"a"}, [][]float32{{1, 0}}))

	hits, err := idx.Query(ctx, []float32{0, 0}, 1)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestBuild_ReplacesContents(t *testing.T) {
	ctx := context.Background()
	idx := New()
	require.NoError(t, idx.Build(ctx, []string{"a", "b"}, [][]float32{{1, 0}, {0, 1}}))
	require.Equal(t, 2, idx.Len())

	require.NoError(t, idx.Build(ctx, []string{"c"}, [][]float32{{1, 1}}))
	assert.Equal(t, 1, idx.Len())

	hits, err := idx.Query(ctx, []float32{1, 1}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "c", hits[0].ID)
}

func TestClose_ClearsIndex(t *testing.T) {
	ctx := context.Background()
	idx := New()
	require.NoError(t, idx.Build(ctx, []string{"a"}, [][]float32{{1, 0}}))
	require.NoError(t, idx.Close())

	assert.Equal(t, 0, idx.Len())
	hits, err := idx.Query(ctx, []float32{1, 0}, 1)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
