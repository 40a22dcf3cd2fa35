package combine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestShouldSkipFile(t *testing.T) {
	assert.Equal(t, "", shouldSkipFile(fakeInfo{size: 10}, 10))
	assert.Equal(t, skipOversized, shouldSkipFile(fakeInfo{size: 11}, 10))
	assert.Equal(t, skipNotRegular, shouldSkipFile(fakeInfo{mode: os.ModeDir}, 10))
	assert.Equal(t, skipNotRegular, shouldSkipFile(fakeInfo{mode: os.ModeSymlink}, 10))
}

func TestWriteCombinedFileReplacesContent(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "combined.md")
	require.NoError(t, os.WriteFile(out, []byte("old content"), 0644))

	require.NoError(t, WriteCombinedFile(out, "new content", zap.NewNop()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestWriteCombinedFileFailureKeepsDestination(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the output file cannot be replaced by a rename.
	out := filepath.Join(dir, "taken")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "child"), 0755))

	err := FileSink{Path: out}.WriteText("content")
	require.Error(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
