package host

import (
	"path/filepath"
	"strings"
)

// Workspace is the set of folders the user is working in.
type Workspace struct {
	folders []string
}

// NewWorkspace returns a workspace of the given folders. Relative folders are
// resolved against the working directory; unresolvable ones are dropped.
func NewWorkspace(folders ...string) *Workspace {
	w := &Workspace{}
	for _, f := range folders {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		w.folders = append(w.folders, abs)
	}
	return w
}

// Folders returns the workspace folders as absolute paths.
func (w *Workspace) Folders() []string {
	return append([]string(nil), w.folders...)
}

// FolderFor returns the innermost workspace folder containing path.
func (w *Workspace) FolderFor(path string) (string, bool) {
	best := ""
	for _, folder := range w.folders {
		if contains(folder, path) && len(folder) > len(best) {
			best = folder
		}
	}
	return best, best != ""
}

func contains(folder, path string) bool {
	rel, err := filepath.Rel(folder, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
