package combine

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listFS answers FindFiles from fixed per-pattern results.
type listFS struct {
	results map[string][]string // keyed by include pattern
	err     error
	calls   []string
}

func (l *listFS) FindFiles(root, include, exclude string) ([]string, error) {
	l.calls = append(l.calls, include+"|"+exclude)
	if l.err != nil {
		return nil, l.err
	}
	return l.results[include], nil
}

func (l *listFS) Stat(string) (fs.FileInfo, error) { return nil, fs.ErrNotExist }
func (l *listFS) ReadFile(string) ([]byte, error)  { return nil, fs.ErrNotExist }

func TestExcludePattern(t *testing.T) {
	assert.Equal(t, "", ExcludePattern(nil))
	assert.Equal(t, "", ExcludePattern([]string{}))
	assert.Equal(t, "{**/*.log}", ExcludePattern([]string{"**/*.log"}))
	assert.Equal(t, "{**/*.log,build/**}", ExcludePattern([]string{"**/*.log", "build/**"}))
}

func TestIntersectSelection(t *testing.T) {
	all := []string{"/p/a.txt", "/p/b.md", "/p/c.go", "/p/sub/d.txt"}
	perInclude := [][]string{
		{"/p/sub/d.txt", "/p/a.txt"},
		{"/p/c.go", "/p/a.txt", "/p/elsewhere.go"},
	}

	got := IntersectSelection(all, perInclude)
	assert.Equal(t, []string{"/p/a.txt", "/p/c.go", "/p/sub/d.txt"}, got, "order follows the unfiltered set")
}

func TestIntersectSelectionDropsExcludedIncludeMatches(t *testing.T) {
	// all is already exclude-filtered; an include match missing from it stays out.
	got := IntersectSelection([]string{"/p/a.txt"}, [][]string{{"/p/a.txt", "/p/excluded.txt"}})
	assert.Equal(t, []string{"/p/a.txt"}, got)
}

func TestIntersectSelectionNoIncludes(t *testing.T) {
	assert.Empty(t, IntersectSelection([]string{"/p/a.txt"}, nil))
}

func TestSelectFilesDefaultIncludeUsesSingleQuery(t *testing.T) {
	fsys := &listFS{results: map[string][]string{
		"**/*": {"/p/a.txt", "/p/b.bin"},
	}}

	got, err := SelectFiles(fsys, "/p", []string{"**/*"}, []string{"*.log", "tmp/**"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/a.txt", "/p/b.bin"}, got)
	assert.Equal(t, []string{"**/*|{*.log,tmp/**}"}, fsys.calls)
}

func TestSelectFilesIncludes(t *testing.T) {
	fsys := &listFS{results: map[string][]string{
		"**/*":      {"/p/a.txt", "/p/b.bin", "/p/main.go", "/p/sub/c.txt"},
		"**/*.txt":  {"/p/a.txt", "/p/sub/c.txt"},
		"**/*.go":   {"/p/main.go"},
		"**/*.none": nil,
	}}

	got, err := SelectFiles(fsys, "/p", []string{"**/*.txt", "**/*.go", "**/*.none"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/a.txt", "/p/main.go", "/p/sub/c.txt"}, got)
	assert.Equal(t, []string{"**/*|", "**/*.txt|", "**/*.go|", "**/*.none|"}, fsys.calls)
}

func TestSelectFilesPropagatesErrors(t *testing.T) {
	fsys := &listFS{err: ErrConfiguration}
	_, err := SelectFiles(fsys, "/p", []string{"**/*"}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestSelectionConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultSelectionConfig().Validate())

	cfg := SelectionConfig{
		IncludeGlobs:     []string{"**/*.go", "src/[a-"},
		ExcludeGlobs:     []string{"{unterminated"},
		MaxFileSizeBytes: 10,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "src/[a-")
	assert.Contains(t, err.Error(), "{unterminated")

	assert.ErrorIs(t, SelectionConfig{IncludeGlobs: []string{""}}.Validate(), ErrConfiguration)
	assert.ErrorIs(t, SelectionConfig{IncludeGlobs: []string{"**/*"}, MaxFileSizeBytes: -1}.Validate(), ErrConfiguration)
}

func TestDefaultSelectionConfig(t *testing.T) {
	cfg := DefaultSelectionConfig()
	assert.Equal(t, []string{"**/*"}, cfg.IncludeGlobs)
	assert.Empty(t, cfg.ExcludeGlobs)
	assert.Equal(t, int64(512*1024), cfg.MaxFileSizeBytes)
}
