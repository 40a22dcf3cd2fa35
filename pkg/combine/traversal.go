// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ExcludePattern combines exclude globs into a single brace alternation.
// No globs yields the empty pattern, which excludes nothing.
func ExcludePattern(excludes []string) string {
	if len(excludes) == 0 {
		return ""
	}
	return "{" + strings.Join(excludes, ",") + "}"
}

// isMatchAll reports whether includes is exactly the default "everything" selection.
func isMatchAll(includes []string) bool {
	return len(includes) == 1 && includes[0] == DefaultIncludeGlob
}

// SelectFiles resolves include and exclude globs under root into an ordered list of
// absolute file paths. The order is the enumeration order of the unfiltered set;
// a path qualifies when it survives the excludes and matches at least one include.
func SelectFiles(fsys FileSystem, root string, includes, excludes []string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	exclude := ExcludePattern(excludes)
	logger.Debug("Selecting files",
		zap.String("root", root),
		zap.Strings("includes", includes),
		zap.String("exclude", exclude))

	all, err := fsys.FindFiles(root, DefaultIncludeGlob, exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate files under %s: %w", root, err)
	}
	if isMatchAll(includes) {
		logger.Debug("Default include selects every file", zap.Int("fileCount", len(all)))
		return all, nil
	}

	perInclude := make([][]string, 0, len(includes))
	for _, include := range includes {
		matches, err := fsys.FindFiles(root, include, exclude)
		if err != nil {
			return nil, fmt.Errorf("failed to match include pattern %q: %w", include, err)
		}
		logger.Debug("Matched include pattern", zap.String("pattern", include), zap.Int("fileCount", len(matches)))
		perInclude = append(perInclude, matches)
	}

	selected := IntersectSelection(all, perInclude)
	logger.Debug("Selected files", zap.Int("fileCount", len(selected)))
	return selected, nil
}

// IntersectSelection keeps the entries of all that appear in at least one of the
// per-include match lists, preserving the order of all.
func IntersectSelection(all []string, perInclude [][]string) []string {
	matched := make(map[string]struct{})
	for _, matches := range perInclude {
		for _, path := range matches {
			matched[path] = struct{}{}
		}
	}
	return lo.Filter(all, func(path string, _ int) bool {
		_, ok := matched[path]
		return ok
	})
}
