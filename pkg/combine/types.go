// File: pkg/combine/types.go
package combine

// CandidateFile is a selected path together with its path relative to the base root.
type CandidateFile struct {
	Path    string // Absolute file path.
	RelPath string // Path relative to the base root, always using forward slashes.
}

// FileContent holds one accepted file after decoding and formatting.
type FileContent struct {
	Path    string // Relative file path, as printed in the section header.
	Content string // The formatted Markdown section, newline terminated.
	Size    int    // Raw size in bytes before decoding.
}

// Document is the assembled Markdown output.
type Document struct {
	Text  string   // Sections joined by a single blank line.
	Files []string // Relative paths of the included files, in output order.
	Bytes int      // Total raw bytes read from the included files.
}

// Result describes a completed copy-folder run.
type Result struct {
	Document
	BaseRoot    string // Root that relative paths were computed against.
	Destination string // "clipboard" or the output file path.
}
