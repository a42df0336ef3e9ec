// Package naming derives a canonical project name from a filesystem path.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Suffix is the recognized package suffix. Target directories may be named
// either "Foo" or "Foo.jl"; both yield the project name "Foo".
const Suffix = ".jl"

// InvalidNameError indicates that a path's final extension is not the
// recognized package suffix.
type InvalidNameError struct {
	// Path is the offending input path.
	Path string
	// Extension is the rejected extension, including the leading dot.
	Extension string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name: path %q has extension %q, expected %q or none",
		e.Path, e.Extension, Suffix)
}

// ProjectName derives the project name from a target path.
//
// The last path component is taken (trailing separators are ignored, so
// "/tmp/Foo/" and "/tmp/Foo" are equivalent), then a single Suffix is
// stripped if present. Any other non-empty extension fails with
// *InvalidNameError.
func ProjectName(path string) (string, error) {
	trimmed := strings.TrimRight(path, "/"+string(filepath.Separator))
	base := filepath.Base(trimmed)

	ext := filepath.Ext(base)
	if ext != "" && ext != Suffix {
		return "", &InvalidNameError{Path: path, Extension: ext}
	}

	return strings.TrimSuffix(base, ext), nil
}
