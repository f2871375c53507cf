package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmint-labs/featselect-cli/internal/featurerow"
)

func TestGenerateCmd_Use(t *testing.T) {
	assert.Equal(t, "generate", generateCmd.Use)
}

func TestGenerateCmd_Short(t *testing.T) {
	assert.Equal(t, "Generate a sample feature dictionary document", generateCmd.Short)
}

func TestGenerateCmd_HasRowsFlag(t *testing.T) {
	flag := generateCmd.Flags().Lookup("rows")
	require.NotNil(t, flag, "rows flag should exist")
	assert.Equal(t, "1500", flag.DefValue)
}

func TestGenerateCmd_WritesTextDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "features.txt")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "--rows", "20", "--seed", "7", "--out", out})
	defer func() {
		rootCmd.SetArgs(nil)
		generateRows = 0
		generateSeed = 0
		generateOut = "featurelist.pdf"
		generateFont = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wrote 20 feature rows to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	records := featurerow.ParseText(string(data), out)
	assert.Len(t, records, 20)
}

func TestGenerateCmd_WritesPDFDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "features.pdf")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"generate", "--rows", "5", "--out", out})
	defer func() {
		rootCmd.SetArgs(nil)
		generateRows = 0
		generateSeed = 0
		generateOut = "featurelist.pdf"
		generateFont = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
