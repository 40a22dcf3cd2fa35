// Package host implements the capabilities the combine process borrows from its
// environment: file enumeration, the clipboard, settings, workspace folders and
// user notifications.
package host

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"foldermd/pkg/combine"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// OSFileSystem implements combine.FileSystem on the local disk.
type OSFileSystem struct {
	logger *zap.Logger
}

// NewOSFileSystem returns a file system backed by the os package.
func NewOSFileSystem(logger *zap.Logger) *OSFileSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OSFileSystem{logger: logger}
}

// FindFiles implements combine.FileSystem.
func (o *OSFileSystem) FindFiles(root, include, exclude string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			o.logger.Debug("Search root does not exist", zap.String("root", root))
			return nil, nil
		}
		return nil, fmt.Errorf("cannot access %s: %w", root, err)
	}

	rel, err := FindInFS(os.DirFS(root), include, exclude, o.logger)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(rel))
	for i, p := range rel {
		paths[i] = filepath.Join(root, filepath.FromSlash(p))
	}
	return paths, nil
}

// Stat implements combine.FileSystem.
func (o *OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile implements combine.FileSystem.
func (o *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FindInFS walks fsys in lexical order and returns the slash-separated paths of
// non-directory entries that match include and do not match exclude. Directories
// matching exclude are not descended into. Unreadable directories are skipped.
func FindInFS(fsys fs.FS, include, exclude string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !doublestar.ValidatePattern(include) {
		return nil, fmt.Errorf("%w: include pattern %q: %w", combine.ErrConfiguration, include, doublestar.ErrBadPattern)
	}
	if exclude != "" && !doublestar.ValidatePattern(exclude) {
		return nil, fmt.Errorf("%w: exclude pattern %q: %w", combine.ErrConfiguration, exclude, doublestar.ErrBadPattern)
	}

	var matches []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == "." {
			return nil
		}

		excluded := exclude != "" && doublestar.MatchUnvalidated(exclude, path)
		if d.IsDir() {
			if excluded {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return fs.SkipDir
			}
			return nil
		}
		if excluded {
			return nil
		}
		if doublestar.MatchUnvalidated(include, path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk files: %w", err)
	}
	return matches, nil
}
