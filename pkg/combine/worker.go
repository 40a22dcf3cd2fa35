// File: pkg/combine/worker.go
package combine

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProcessFilesConcurrently processes candidates with at most maxWorkers concurrent
// readers. The result has one slot per candidate in candidate order; a nil slot
// means the file was skipped.
func ProcessFilesConcurrently(ctx context.Context, fsys FileSystem, files []CandidateFile, maxFileSizeBytes int64, maxWorkers int, logger *zap.Logger) ([]*FileContent, error) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
		logger.Debug("Adjusted worker count", zap.Int("workers", maxWorkers))
	}

	results := make([]*FileContent, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	logger.Debug("Distributing files to workers", zap.Int("workers", maxWorkers), zap.Int("fileCount", len(files)))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, ok := ProcessSingleFile(fsys, file, maxFileSizeBytes, logger)
			if ok {
				results[i] = &content
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("All files processed", zap.Int("fileCount", len(files)))
	return results, nil
}
