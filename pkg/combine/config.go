// File: pkg/combine/config.go
package combine

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/multierr"
)

// Default selection values, mirroring the host settings defaults.
const (
	DefaultIncludeGlob   = "**/*"
	DefaultMaxFileSizeKB = 512
)

// SelectionConfig holds the options that decide which files end up in the document.
// It is treated as immutable for the duration of one run.
type SelectionConfig struct {
	IncludeGlobs     []string // Include patterns, relative to the selected folder.
	ExcludeGlobs     []string // Exclude patterns; empty means exclude nothing.
	MaxFileSizeBytes int64    // Files larger than this are skipped; equal size is kept.
}

// DefaultSelectionConfig returns the configuration used when the host supplies no settings.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		IncludeGlobs:     []string{DefaultIncludeGlob},
		ExcludeGlobs:     []string{},
		MaxFileSizeBytes: KBToBytes(DefaultMaxFileSizeKB),
	}
}

// KBToBytes converts a kilobyte setting into bytes.
func KBToBytes(kb int) int64 {
	return int64(kb) * 1024
}

// Validate checks every glob in the configuration and reports all invalid ones at once.
func (c SelectionConfig) Validate() error {
	var errs error
	for _, p := range c.IncludeGlobs {
		errs = multierr.Append(errs, validatePattern("include", p))
	}
	for _, p := range c.ExcludeGlobs {
		errs = multierr.Append(errs, validatePattern("exclude", p))
	}
	if c.MaxFileSizeBytes < 0 {
		errs = multierr.Append(errs, fmt.Errorf("max file size must not be negative, got %d bytes", c.MaxFileSizeBytes))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, errs)
	}
	return nil
}

func validatePattern(kind, pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty %s pattern", kind)
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid %s pattern %q: %w", kind, pattern, doublestar.ErrBadPattern)
	}
	return nil
}

// Arguments holds the options for a single copy-folder invocation.
type Arguments struct {
	Target     string          // The folder selected by the user.
	Selection  SelectionConfig // Include/exclude globs and size cap.
	MaxWorkers int             // Number of concurrent file readers; <= 0 means runtime.NumCPU().
}
