package dedup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_MarkAndSeen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.txt")

	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Seen("https://example.com/a"))

	require.NoError(t, f.MarkSeen("https://example.com/a"))
	assert.True(t, f.Seen("https://example.com/a"))
	assert.False(t, f.Seen("https://example.com/b"))

	// marking twice is a no-op
	require.NoError(t, f.MarkSeen("https://example.com/a"))
	assert.Equal(t, 1, f.Len())
}

func TestFile_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.txt")

	f, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, f.MarkSeen("https://example.com/a"))
	require.NoError(t, f.MarkSeen("https://example.com/b"))

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.True(t, reopened.Seen("https://example.com/a"))
	assert.True(t, reopened.Seen("https://example.com/b"))
	assert.Equal(t, 2, reopened.Len())
}

func TestFile_MissingFileIsEmpty(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.NoError(t, err, "missing cache file must not fail the run")
	assert.Equal(t, 0, f.Len())
}

func TestFile_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.txt")
	require.NoError(t, os.WriteFile(path, []byte("https://example.com/a\n\n  \nhttps://example.com/b\n"), 0o600))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Seen("https://example.com/a"))
	assert.True(t, f.Seen("https://example.com/b"))
}

func TestFile_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.txt")

	f, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, f.MarkSeen("  https://example.com/a  "))
	assert.True(t, f.Seen("https://example.com/a"))

	err = f.MarkSeen("   ")
	assert.Error(t, err)
}
