package combine

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const codeFence = "```"

// RelativePath computes path relative to baseRoot using forward slashes.
// If no relative path exists the slash form of path is returned.
func RelativePath(baseRoot, path string) string {
	rel, err := filepath.Rel(baseRoot, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

// FormatSection renders one file as a bracketed path header followed by a fenced
// code block. The section ends with a newline.
func FormatSection(relPath, text string) string {
	var b strings.Builder
	b.Grow(len(relPath) + len(text) + 2*len(codeFence) + 6)
	b.WriteString("[")
	b.WriteString(relPath)
	b.WriteString("]\n")
	b.WriteString(codeFence)
	b.WriteString("\n")
	b.WriteString(text)
	b.WriteString("\n")
	b.WriteString(codeFence)
	b.WriteString("\n")
	return b.String()
}

// ProcessSingleFile stats, reads, classifies and formats one candidate. The second
// return value is false when the file was skipped; skips are logged, never returned.
func ProcessSingleFile(fsys FileSystem, file CandidateFile, maxFileSizeBytes int64, logger *zap.Logger) (FileContent, bool) {
	logger.Debug("Processing file", zap.String("filePath", file.Path))

	info, err := fsys.Stat(file.Path)
	if err != nil {
		logSkip(logger, file, skipUnreadable, zap.Error(err))
		return FileContent{}, false
	}
	if reason := shouldSkipFile(info, maxFileSizeBytes); reason != "" {
		logSkip(logger, file, reason, zap.Int64("sizeBytes", info.Size()), zap.Int64("maxSizeBytes", maxFileSizeBytes))
		return FileContent{}, false
	}

	data, err := fsys.ReadFile(file.Path)
	if err != nil {
		logSkip(logger, file, skipUnreadable, zap.Error(err))
		return FileContent{}, false
	}
	if !LooksLikeText(data) {
		logSkip(logger, file, skipBinary)
		return FileContent{}, false
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", file.Path),
		zap.Int("contentSizeBytes", len(data)))

	return FileContent{
		Path:    file.RelPath,
		Content: FormatSection(file.RelPath, DecodeUTF8(data)),
		Size:    len(data),
	}, true
}

func logSkip(logger *zap.Logger, file CandidateFile, reason string, fields ...zap.Field) {
	logger.Debug("Skipping file",
		append([]zap.Field{zap.String("filePath", file.Path), zap.String("reason", reason)}, fields...)...)
}
