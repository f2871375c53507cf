package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "featurelist.txt")
	content := "ID: A #001 | CAT: X | DESC: d | VAL: 1\nID: B #002 | CAT: Y | DESC: e | VAL: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	pages, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, content, pages[0])
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
