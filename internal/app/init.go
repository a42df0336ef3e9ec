package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/tacogips/skel/internal/logging"
	"github.com/tacogips/skel/internal/naming"
	"github.com/tacogips/skel/internal/skeleton/model"
	"github.com/tacogips/skel/internal/skeleton/reconcile"
	"github.com/tacogips/skel/internal/skeleton/resolve"
	"github.com/tacogips/skel/internal/skeleton/source"
	"github.com/tacogips/skel/internal/skeleton/subst"
	"github.com/tacogips/skel/internal/skeleton/writer"
)

// InitOptions contains options for project initialization.
type InitOptions struct {
	// TargetDir is the directory to populate. Its basename determines the
	// project name.
	TargetDir string
	// Template is the template name or directory path. Empty selects the
	// default built-in template.
	Template string
	// Vars are placeholder overrides, used verbatim. Keys present here skip
	// default resolution.
	Vars map[string]string
	// OverwriteDirty overwrites files that carry uncommitted local changes.
	OverwriteDirty bool
	// DryRun classifies and reports without writing files.
	DryRun bool
	// InitRepo creates the target directory and initializes a git
	// repository in it when it is missing or not yet version controlled.
	InitRepo bool
	// ConfirmDirty, when set and OverwriteDirty is false, is asked once
	// whether files with uncommitted changes should be overwritten after
	// all. It receives the dirty paths in template order.
	ConfirmDirty func(paths []string) bool
	// Resolver overrides the placeholder resolver. Nil uses git config
	// from the target directory.
	Resolver *resolve.Resolver
}

// InitResult contains the results of project initialization.
type InitResult struct {
	// ProjectName is the name derived from the target path.
	ProjectName string
	// Source describes the template that was applied.
	Source string
	// Table is the resolved placeholder table.
	Table model.PlaceholderTable
	// Classification is the per-bucket reconciliation outcome.
	Classification *reconcile.Classification
	// Report records what the executor wrote and skipped.
	Report *writer.Report
}

// Init populates the target directory from a template.
//
// The pipeline is a single pass: derive the project name, resolve the
// placeholder table, read the template, substitute placeholders in paths
// and contents, reconcile against the target's git status, and write the
// buckets the policy allows. Any failure aborts the run; files already
// written stay written.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	log := logging.GetLogger("app")

	if opts.TargetDir == "" {
		return nil, NewValidationError("target directory cannot be empty", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projectName, err := naming.ProjectName(opts.TargetDir)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("target", opts.TargetDir).Str("project", projectName).Msg("starting init")

	targetDir, err := filepath.Abs(opts.TargetDir)
	if err != nil {
		return nil, NewValidationError("failed to resolve target path", err)
	}
	if err := ensureTargetDir(targetDir, opts.InitRepo); err != nil {
		return nil, err
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = resolve.NewResolver(targetDir)
	}
	table, err := resolver.Resolve(projectName, opts.Vars)
	if err != nil {
		return nil, err
	}

	src, err := source.Resolve(opts.Template)
	if err != nil {
		return nil, err
	}
	tmpl, err := src.Read()
	if err != nil {
		return nil, NewTemplateLoadError(fmt.Sprintf("failed to read template %s", src), err)
	}

	applied, err := subst.Apply(tmpl, table)
	if err != nil {
		return nil, NewInitError("placeholder substitution failed", err)
	}

	classification, err := reconcile.Reconcile(targetDir, applied)
	if err != nil {
		return nil, err
	}

	overwriteDirty := opts.OverwriteDirty
	if !overwriteDirty && len(classification.Dirty) > 0 && opts.ConfirmDirty != nil && !opts.DryRun {
		dirtyPaths := make([]string, len(classification.Dirty))
		for i, entry := range classification.Dirty {
			dirtyPaths[i] = entry.Path
		}
		overwriteDirty = opts.ConfirmDirty(dirtyPaths)
	}

	report, err := writer.Execute(targetDir, classification, writer.Options{
		OverwriteDirty: overwriteDirty,
		DryRun:         opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	return &InitResult{
		ProjectName:    projectName,
		Source:         src.String(),
		Table:          table,
		Classification: classification,
		Report:         report,
	}, nil
}

// ensureTargetDir validates the target directory, creating it and
// initializing a git repository when initRepo allows.
func ensureTargetDir(targetDir string, initRepo bool) error {
	info, err := os.Stat(targetDir)
	switch {
	case os.IsNotExist(err):
		if !initRepo {
			return NewValidationError(
				fmt.Sprintf("target directory does not exist: %s (pass --init-repo to create it)", targetDir), nil)
		}
		if err := os.MkdirAll(targetDir, 0755); err != nil {
			return NewInitError("failed to create target directory", err)
		}
	case err != nil:
		return NewInitError("failed to stat target directory", err)
	case !info.IsDir():
		return NewValidationError(
			fmt.Sprintf("target path exists and is not a directory: %s", targetDir), nil)
	}

	if !initRepo {
		return nil
	}
	if _, err := git.PlainOpen(targetDir); err == nil {
		return nil
	} else if err != git.ErrRepositoryNotExists {
		return NewInitError("failed to open target repository", err)
	}
	if _, err := git.PlainInit(targetDir, false); err != nil {
		return NewInitError("failed to initialize git repository", err)
	}
	return nil
}
