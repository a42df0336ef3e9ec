// Package reader loads a template source tree into memory.
package reader

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/tacogips/skel/internal/logging"
	"github.com/tacogips/skel/internal/skeleton/model"
)

// ReadErrorType categorizes read errors.
type ReadErrorType int

const (
	// ReadSourceMissing indicates the source directory does not exist.
	ReadSourceMissing ReadErrorType = iota
	// ReadFailed indicates a file or directory could not be read.
	ReadFailed
)

// ReadError represents a template read failure.
type ReadError struct {
	// Type categorizes the error.
	Type ReadErrorType
	// Path is the file or directory that failed.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	switch e.Type {
	case ReadSourceMissing:
		return fmt.Sprintf("template source does not exist: %s", e.Path)
	default:
		return fmt.Sprintf("failed to read template file %s: %v", e.Path, e.Cause)
	}
}

// Unwrap returns the underlying cause.
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ReadTemplate walks fsys recursively and loads every regular file into a
// Template. Paths are relative to the filesystem root and use forward
// slashes. Content is read as raw bytes; no decoding is attempted, so
// binary assets survive unchanged. Entries come back sorted by path.
func ReadTemplate(fsys fs.FS, source string) (*model.Template, error) {
	log := logging.GetLogger("reader")

	tmpl := &model.Template{Source: source}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &ReadError{Type: ReadFailed, Path: path, Cause: err}
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			// Symlinks and other non-regular files are not template entries.
			log.Debug().Str("path", path).Msg("skipping non-regular file")
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return &ReadError{Type: ReadFailed, Path: path, Cause: err}
		}

		tmpl.Entries = append(tmpl.Entries, model.Entry{Path: path, Content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// fs.WalkDir visits in lexical order, but sort anyway so the ordering
	// contract does not depend on the walk implementation.
	tmpl.Sort()

	log.Debug().Str("source", source).Int("entries", len(tmpl.Entries)).Msg("template loaded")
	return tmpl, nil
}

// ReadTemplateDir loads a template from a directory on the host filesystem.
func ReadTemplateDir(dir string) (*model.Template, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ReadError{Type: ReadSourceMissing, Path: dir, Cause: err}
		}
		return nil, &ReadError{Type: ReadFailed, Path: dir, Cause: err}
	}
	if !info.IsDir() {
		return nil, &ReadError{Type: ReadSourceMissing, Path: dir,
			Cause: fmt.Errorf("not a directory")}
	}

	return ReadTemplate(os.DirFS(dir), dir)
}
