// File: pkg/combine/host.go
package combine

import (
	"io/fs"
)

// FileSystem is the file access the combine process needs from its host.
type FileSystem interface {
	// FindFiles returns absolute paths of the non-directory entries under root whose
	// root-relative path matches include and does not match exclude. An empty exclude
	// excludes nothing. A missing root yields an empty result.
	FindFiles(root, include, exclude string) ([]string, error)
	// Stat describes path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile returns the raw content of path.
	ReadFile(path string) ([]byte, error)
}

// Clipboard receives the finished document.
type Clipboard interface {
	WriteText(text string) error
}

// Notifier reports run-level outcomes to the user.
type Notifier interface {
	Info(message string)
	Warn(message string)
	Error(message string)
	// Progress shows title while fn runs and returns fn's error.
	Progress(title string, fn func() error) error
}

// Workspace resolves the workspace folder that contains a path.
type Workspace interface {
	FolderFor(path string) (string, bool)
}
