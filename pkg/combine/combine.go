package combine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Assemble selects the files under root, filters and formats them, and joins the
// sections into one Markdown document. Relative paths are computed against baseRoot.
// It returns ErrEmptySelection when no file is accepted.
func Assemble(ctx context.Context, fsys FileSystem, root, baseRoot string, cfg SelectionConfig, maxWorkers int, logger *zap.Logger) (Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Debug("Starting assembly", zap.String("root", root), zap.String("baseRoot", baseRoot))

	if err := cfg.Validate(); err != nil {
		return Document{}, err
	}

	paths, err := SelectFiles(fsys, root, cfg.IncludeGlobs, cfg.ExcludeGlobs, logger)
	if err != nil {
		return Document{}, err
	}

	candidates := make([]CandidateFile, len(paths))
	for i, path := range paths {
		candidates[i] = CandidateFile{Path: path, RelPath: RelativePath(baseRoot, path)}
	}

	results, err := ProcessFilesConcurrently(ctx, fsys, candidates, cfg.MaxFileSizeBytes, maxWorkers, logger)
	if err != nil {
		return Document{}, fmt.Errorf("failed to process files: %w", err)
	}

	doc := JoinSections(results)
	logger.Debug("Assembly completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("included", len(doc.Files)),
		zap.Duration("elapsed", time.Since(startTime)))

	if len(doc.Files) == 0 {
		return doc, ErrEmptySelection
	}
	return doc, nil
}

// JoinSections joins accepted sections, in order, with a single blank line between
// them. Nil entries are skipped files.
func JoinSections(results []*FileContent) Document {
	var doc Document
	sections := make([]string, 0, len(results))
	for _, content := range results {
		if content == nil {
			continue
		}
		sections = append(sections, content.Content)
		doc.Files = append(doc.Files, content.Path)
		doc.Bytes += content.Size
	}
	doc.Text = strings.Join(sections, "\n")
	return doc
}

// IsEmptySelection reports whether err means nothing matched.
func IsEmptySelection(err error) bool {
	return errors.Is(err, ErrEmptySelection)
}
