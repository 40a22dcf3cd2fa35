// File: pkg/combine/errors.go
package combine

import "errors"

// Whole-run error kinds. Per-file failures never surface as errors; the file is skipped.
var (
	// ErrInvalidTarget means the selected location is not a real, local directory.
	ErrInvalidTarget = errors.New("invalid target folder")
	// ErrConfiguration means a glob pattern or setting is invalid.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrEmptySelection means no file survived selection and filtering.
	ErrEmptySelection = errors.New("no files matched")
	// ErrClipboardWrite means the final write to the output sink failed.
	ErrClipboardWrite = errors.New("failed to write to clipboard")
)
