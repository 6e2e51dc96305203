package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOutputPathDefault(t *testing.T) {
	got := ResolveOutputPath("", "Augmont_Filtered_Data.xlsx", "augmont")
	assert.Equal(t, "Augmont_Filtered_Data.xlsx", got)
}

func TestResolveOutputPathDirectory(t *testing.T) {
	dir := t.TempDir()
	got := ResolveOutputPath(dir, "filtered-transactions.csv", "cashfree")
	assert.Equal(t, filepath.Join(dir, "filtered-transactions.csv"), got)
}

func TestResolveOutputPathVerbatim(t *testing.T) {
	got := ResolveOutputPath("reports/out.xlsx", "default.xlsx", "mmtc")
	assert.Equal(t, "reports/out.xlsx", got)
}

func TestExpandNamePattern(t *testing.T) {
	got := ExpandNamePattern("reports/{flow}_{timestamp}.xlsx", "mmtc")
	assert.True(t, strings.HasPrefix(got, "reports/mmtc_"))
	assert.True(t, strings.HasSuffix(got, ".xlsx"))
	assert.NotContains(t, got, "{")

	a := ExpandNamePattern("{uuid}.csv", "cashfree")
	b := ExpandNamePattern("{uuid}.csv", "cashfree")
	assert.NotEqual(t, a, b)
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.xlsx")
	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Bare file names need no directory work.
	assert.NoError(t, EnsureParentDir("out.xlsx"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.xlsx")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))

	assert.False(t, FileExists(dir))
}
