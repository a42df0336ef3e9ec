// Package writer executes the write plan produced by reconciliation.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/skel/internal/logging"
	"github.com/tacogips/skel/internal/skeleton/model"
	"github.com/tacogips/skel/internal/skeleton/reconcile"
)

// Options configures write plan execution.
type Options struct {
	// OverwriteDirty overwrites files with uncommitted local changes.
	// When false, dirty entries are skipped.
	OverwriteDirty bool
	// DryRun classifies and reports without writing anything.
	DryRun bool
}

// Report records, per bucket, what the executor did. Path lists preserve
// the applied template's entry order.
type Report struct {
	// Written are the paths that were written (clean entries, plus dirty
	// entries when overwriting was enabled).
	Written []string
	// SkippedSame are the paths skipped because content already matched.
	SkippedSame []string
	// SkippedDirty are the paths skipped to protect uncommitted changes.
	SkippedDirty []string
	// DryRun records whether this was a dry run (nothing written).
	DryRun bool
}

// WriteError represents a failed file write. A write error aborts the run;
// files already written stay written, the caller's own version control is
// the safety net.
type WriteError struct {
	// Path is the file that failed.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Execute writes the clean bucket, writes the dirty bucket only when
// OverwriteDirty is set, and never touches the same bucket. Parent
// directories are created as needed. Writes are whole-file replacements.
func Execute(targetDir string, c *reconcile.Classification, opts Options) (*Report, error) {
	log := logging.GetLogger("writer")

	report := &Report{DryRun: opts.DryRun}

	for _, entry := range c.Same {
		report.SkippedSame = append(report.SkippedSame, entry.Path)
	}

	for _, entry := range c.Dirty {
		if !opts.OverwriteDirty {
			log.Debug().Str("path", entry.Path).Msg("skipping file with uncommitted changes")
			report.SkippedDirty = append(report.SkippedDirty, entry.Path)
			continue
		}
		if err := writeEntry(targetDir, entry, opts.DryRun); err != nil {
			return report, err
		}
		report.Written = append(report.Written, entry.Path)
	}

	for _, entry := range c.Clean {
		if err := writeEntry(targetDir, entry, opts.DryRun); err != nil {
			return report, err
		}
		report.Written = append(report.Written, entry.Path)
	}

	log.Debug().
		Str("target", targetDir).
		Bool("dryRun", opts.DryRun).
		Int("written", len(report.Written)).
		Int("skippedSame", len(report.SkippedSame)).
		Int("skippedDirty", len(report.SkippedDirty)).
		Msg("write plan executed")

	return report, nil
}

// writeEntry writes one entry under targetDir, creating parent directories
// as needed. Content goes through a temporary file in the same directory
// followed by a rename, so a crashed write does not leave a truncated file.
func writeEntry(targetDir string, entry model.Entry, dryRun bool) error {
	path := filepath.Join(targetDir, filepath.FromSlash(entry.Path))
	if dryRun {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	tmp, err := os.CreateTemp(dir, ".skel-*")
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(entry.Content)
	closeErr := tmp.Close()
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Cause: writeErr}
	}
	if closeErr != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Cause: closeErr}
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Cause: err}
	}

	return nil
}
