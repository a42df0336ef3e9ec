// Package reconcile classifies applied template entries against the target
// directory's git working tree.
//
// Every entry lands in exactly one of three buckets:
//
//   - same:  the on-disk file is byte-identical to the applied content
//   - dirty: the on-disk file differs and git reports uncommitted changes
//     (modified from HEAD, staged, or untracked)
//   - clean: the file does not exist, or it differs but its current content
//     is committed history and therefore recoverable
//
// Identity is checked before git status, so a file whose content already
// matches is never flagged dirty for unrelated reasons.
package reconcile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/tacogips/skel/internal/logging"
	"github.com/tacogips/skel/internal/skeleton/model"
)

// ErrorType categorizes reconciliation errors.
type ErrorType int

const (
	// NotARepository indicates the target is not a git working tree.
	NotARepository ErrorType = iota
	// NotAFile indicates a target path collides with a directory or other
	// non-regular file where a regular file is expected.
	NotAFile
	// StatusFailed indicates the git status query failed.
	StatusFailed
	// ReadFailed indicates an on-disk file could not be read for comparison.
	ReadFailed
)

// Error represents a reconciliation failure. All reconciliation errors are
// fatal to the run; none are recoverable per entry.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Path is the offending path.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Type {
	case NotARepository:
		return fmt.Sprintf("target %s is not a git repository (run 'git init' first, or pass --init-repo)", e.Path)
	case NotAFile:
		return fmt.Sprintf("target path %s exists but is not a regular file", e.Path)
	case StatusFailed:
		return fmt.Sprintf("failed to query git status for %s: %v", e.Path, e.Cause)
	default:
		return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Classification partitions an applied template into the three buckets.
// Bucket slices preserve the applied template's entry order.
type Classification struct {
	// Same holds entries whose on-disk content already matches.
	Same []model.Entry
	// Dirty holds entries whose target files carry uncommitted changes.
	Dirty []model.Entry
	// Clean holds entries that are safe to write.
	Clean []model.Entry
}

// Reconcile classifies every entry of the applied template against the
// target directory. The target must exist and be a valid git working tree;
// its repository is opened read-only for a single status query.
func Reconcile(targetDir string, applied *model.Template) (*Classification, error) {
	log := logging.GetLogger("reconcile")

	repo, err := git.PlainOpen(targetDir)
	if err != nil {
		if err == git.ErrRepositoryNotExists {
			return nil, &Error{Type: NotARepository, Path: targetDir, Cause: err}
		}
		return nil, &Error{Type: StatusFailed, Path: targetDir, Cause: err}
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, &Error{Type: StatusFailed, Path: targetDir, Cause: err}
	}
	status, err := wt.Status()
	if err != nil {
		return nil, &Error{Type: StatusFailed, Path: targetDir, Cause: err}
	}

	c := &Classification{}
	for _, entry := range applied.Entries {
		absPath := filepath.Join(targetDir, filepath.FromSlash(entry.Path))

		info, err := os.Lstat(absPath)
		switch {
		case os.IsNotExist(err):
			c.Clean = append(c.Clean, entry)
			continue
		case err != nil:
			return nil, &Error{Type: ReadFailed, Path: absPath, Cause: err}
		case !info.Mode().IsRegular():
			return nil, &Error{Type: NotAFile, Path: absPath}
		}

		onDisk, err := os.ReadFile(absPath)
		if err != nil {
			return nil, &Error{Type: ReadFailed, Path: absPath, Cause: err}
		}

		switch {
		case bytes.Equal(onDisk, entry.Content):
			c.Same = append(c.Same, entry)
		case hasUncommittedChanges(status, entry.Path):
			c.Dirty = append(c.Dirty, entry)
		default:
			c.Clean = append(c.Clean, entry)
		}
	}

	log.Debug().
		Str("target", targetDir).
		Int("same", len(c.Same)).
		Int("dirty", len(c.Dirty)).
		Int("clean", len(c.Clean)).
		Msg("reconciled applied template")

	return c, nil
}

// hasUncommittedChanges reports whether git considers the path modified from
// HEAD, staged, or untracked. Paths absent from the status map are
// unmodified. The path is slash-separated relative to the worktree root,
// matching go-git's status keys.
func hasUncommittedChanges(status git.Status, path string) bool {
	fileStatus, ok := status[path]
	if !ok {
		return false
	}
	return fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified
}
