package cli

import (
	"fmt"
	"strings"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagTemplate = "template"
	FlagVar      = "var"
	FlagForce    = "force"
	FlagDryRun   = "dry-run"
	FlagInitRepo = "init-repo"
	FlagPrompt   = "prompt"
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"

	// Flag descriptions
	DescTemplate = "Template name or directory path"
	DescVar      = "Placeholder override as KEY=VALUE (repeatable)"
	DescForce    = "Overwrite files with uncommitted local changes"
	DescDryRun   = "Show what would be written without writing"
	DescInitRepo = "Create the target directory and git-init it if needed"
	DescPrompt   = "Interactively prompt for placeholder values"
	DescConfig   = "Path to config file"
	DescVerbose  = "Increase log verbosity (repeatable)"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
)

// parseVarFlags parses repeated KEY=VALUE flag values into a map.
// Later occurrences of the same key win.
func parseVarFlags(values []string) (map[string]string, error) {
	vars := make(map[string]string, len(values))
	for _, raw := range values {
		key, value, ok := strings.Cut(raw, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected KEY=VALUE", raw)
		}
		vars[key] = value
	}
	return vars, nil
}
