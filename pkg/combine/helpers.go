// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Reasons a candidate is left out of the document.
const (
	skipNotRegular = "not-regular"
	skipOversized  = "oversized"
	skipUnreadable = "unreadable"
	skipBinary     = "binary"
)

// shouldSkipFile determines if a file should be skipped based on its type and size.
// It returns the skip reason, or "" when the file may be read.
func shouldSkipFile(info fs.FileInfo, maxFileSizeBytes int64) string {
	if !info.Mode().IsRegular() {
		return skipNotRegular
	}
	if info.Size() > maxFileSizeBytes {
		return skipOversized
	}
	return ""
}

// FileSink writes the document to a file instead of the clipboard.
type FileSink struct {
	Path   string
	Logger *zap.Logger
}

// WriteText implements Clipboard.
func (s FileSink) WriteText(text string) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return WriteCombinedFile(s.Path, text, logger)
}

// WriteCombinedFile writes the combined document to outputPath. The content goes to a
// temporary file in the same directory first, so the destination is either fully
// replaced or left untouched.
func WriteCombinedFile(outputPath string, content string, logger *zap.Logger) error {
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error("Failed to create output directory", zap.String("path", dir), zap.Error(err))
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+".*")
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	writer := bufio.NewWriter(tmpFile)
	if _, err := writer.WriteString(content); err != nil {
		tmpFile.Close()
		logger.Error("Failed to write combined content", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write content: %w", err)
	}
	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		logger.Error("Failed to move output file into place", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	return nil
}
