// File: pkg/combine/binary.go
package combine

import (
	"bytes"
)

const (
	// TextSampleSize is how many leading bytes the text heuristic inspects.
	TextSampleSize = 4096
	// maxControlRatio is the share of disallowed control bytes a text sample may contain.
	maxControlRatio = 0.1
)

// LooksLikeText reports whether data is likely to be text. It inspects the first
// TextSampleSize bytes: any null byte means binary, otherwise the sample is text
// unless more than 10% of it are control characters other than common whitespace.
// Empty input is text.
func LooksLikeText(data []byte) bool {
	sample := data
	if len(sample) > TextSampleSize {
		sample = sample[:TextSampleSize]
	}
	if len(sample) == 0 {
		return true
	}

	// Null bytes are a binary signature
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}

	control := 0
	for _, b := range sample {
		if isDisallowedControl(b) {
			control++
		}
	}
	return float64(control) <= float64(len(sample))*maxControlRatio
}

// isDisallowedControl reports whether b is a control byte outside tab, newline,
// form feed and carriage return.
func isDisallowedControl(b byte) bool {
	if b >= 32 {
		return false
	}
	switch b {
	case '\t', '\n', '\f', '\r':
		return false
	}
	return true
}
