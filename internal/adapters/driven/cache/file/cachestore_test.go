package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmint-labs/featselect-cli/internal/core/domain"
)

func testRecords() []domain.FeatureRecord {
	return []domain.FeatureRecord{
		{
			RawText:     "ID: App Launch Frequency #001 | CAT: Digital Engagement | DESC: Digital Engagement 카테고리의 App Launch Frequency 분석 지표 | VAL: 42",
			Source:      "featurelist.pdf",
			FeatureName: "App Launch Frequency #001",
			Category:    "Digital Engagement",
			Description: "Digital Engagement 카테고리의 App Launch Frequency 분석 지표",
			Value:       "42",
		},
		{
			RawText:     "ID: ARPU #002 | CAT: Commerce & Finance | DESC: d2 | VAL: 7",
			Source:      "featurelist.pdf",
			FeatureName: "ARPU #002",
			Category:    "Commerce & Finance",
			Description: "d2",
			Value:       "7",
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCacheStore(filepath.Join(t.TempDir(), "featurelist.json"))

	records := testRecords()
	require.NoError(t, store.Save(ctx, records))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestSave_PreservesNonASCII(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "featurelist.json")
	store := NewCacheStore(path)

	require.NoError(t, store.Save(ctx, testRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "카테고리의"),
		"non-ASCII content must be written unescaped")
	assert.True(t, strings.Contains(string(data), `"page_content"`))
	assert.True(t, strings.Contains(string(data), `"feature_name"`))
}

func TestSave_OverwritesExisting(t *testing.T) {
	ctx := context.Background()
	store := NewCacheStore(filepath.Join(t.TempDir(), "featurelist.json"))

	require.NoError(t, store.Save(ctx, testRecords()))
	require.NoError(t, store.Save(ctx, testRecords()[:1]))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	store := NewCacheStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestLoad_CorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "featurelist.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewCacheStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestModTime(t *testing.T) {
	dir := t.TempDir()
	store := NewCacheStore(filepath.Join(dir, "featurelist.json"))

	assert.True(t, store.ModTime().IsZero(), "missing cache has zero mod time")

	require.NoError(t, store.Save(context.Background(), testRecords()))
	assert.False(t, store.ModTime().IsZero())
}

func TestSaveLoad_Empty(t *testing.T) {
	ctx := context.Background()
	store := NewCacheStore(filepath.Join(t.TempDir(), "featurelist.json"))

	require.NoError(t, store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
