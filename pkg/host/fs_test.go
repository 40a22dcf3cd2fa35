package host

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"foldermd/pkg/combine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"a.txt":                 {Data: []byte("a")},
		"b.bin":                 {Data: []byte{0}},
		"README.md":             {Data: []byte("# readme")},
		"sub/c.txt":             {Data: []byte("c")},
		"sub/deep/d.go":         {Data: []byte("package d")},
		"node_modules/lib/x.js": {Data: []byte("x")},
		"src/node_modules/y.js": {Data: []byte("y")},
		"src/main.go":           {Data: []byte("package main")},
		"build/out.log":         {Data: []byte("log")},
	}
}

func TestFindInFS(t *testing.T) {
	tests := []struct {
		name    string
		include string
		exclude string
		want    []string
	}{
		{
			name:    "everything",
			include: "**/*",
			want: []string{"README.md", "a.txt", "b.bin", "build/out.log", "node_modules/lib/x.js",
				"src/main.go", "src/node_modules/y.js", "sub/c.txt", "sub/deep/d.go"},
		},
		{
			name:    "recursive extension",
			include: "**/*.txt",
			want:    []string{"a.txt", "sub/c.txt"},
		},
		{
			name:    "single segment wildcard",
			include: "*.txt",
			want:    []string{"a.txt"},
		},
		{
			name:    "brace alternation",
			include: "**/*.{go,md}",
			want:    []string{"README.md", "src/main.go", "sub/deep/d.go"},
		},
		{
			name:    "excluded directories are pruned",
			include: "**/*.js",
			exclude: "{**/node_modules}",
			want:    nil,
		},
		{
			name:    "combined excludes",
			include: "**/*",
			exclude: "{**/node_modules,**/*.log,*.bin}",
			want:    []string{"README.md", "a.txt", "src/main.go", "sub/c.txt", "sub/deep/d.go"},
		},
		{
			name:    "exclude applies to files",
			include: "**/*.txt",
			exclude: "{sub/*}",
			want:    []string{"a.txt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindInFS(sampleFS(), tt.include, tt.exclude, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindInFSInvalidPattern(t *testing.T) {
	_, err := FindInFS(sampleFS(), "[oops", "", nil)
	assert.ErrorIs(t, err, combine.ErrConfiguration)

	_, err = FindInFS(sampleFS(), "**/*", "{a,b", nil)
	assert.ErrorIs(t, err, combine.ErrConfiguration)
}

func TestOSFileSystemFindFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("b"), 0644))

	fsys := NewOSFileSystem(nil)
	got, err := fsys.FindFiles(root, "**/*", "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.txt"), filepath.Join(root, "sub", "b.txt")}, got)

	got, err = fsys.FindFiles(filepath.Join(root, "missing"), "**/*", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOSFileSystemSymlinkedDirectoryIsNotAFile(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, "inside.txt"), []byte("x"), 0644))
	if err := os.Symlink(other, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	fsys := NewOSFileSystem(nil)
	got, err := fsys.FindFiles(root, "**/*", "")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "link")}, got)

	info, err := fsys.Stat(got[0])
	require.NoError(t, err)
	assert.False(t, info.Mode().IsRegular())
}
