// Error types. The formatting core itself is fail-open and reports through
// Result.Warnings; real errors only come out of the document readers and the
// field map loader.

package logicpaper

import "fmt"

// DocumentError represents a failure while reading a template package.
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	}
	return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{Operation: operation, Path: path, Cause: cause}
}

// UnsupportedFormatError indicates a template whose extension maps to no
// known extractor.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported template format: %s", e.Path)
}

// RecoverError converts a panic recovery value to an error.
func RecoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return fmt.Errorf("panic recovered: %w", v)
	case string:
		return fmt.Errorf("panic recovered: %s", v)
	default:
		return fmt.Errorf("panic recovered: %v", v)
	}
}
