package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/tacogips/skel/internal/skeleton/model"
)

// promptedKeys are the placeholders offered by --prompt, in display order.
var promptedKeys = []string{model.KeyAuthor, model.KeyEmail, model.KeyGHUser}

// interactive reports whether stdin is attached to a terminal.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

// promptForPlaceholders interactively asks for author identity values.
// Existing values (from --var or the config file) become prompt defaults;
// an empty answer leaves the key unset so git config resolution applies.
func promptForPlaceholders(vars map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(vars))
	for k, v := range vars {
		out[k] = v
	}

	fmt.Println()
	fmt.Println("Placeholder values (leave empty to use git config):")
	fmt.Println()

	for _, key := range promptedKeys {
		prompt := &survey.Input{
			Message: fmt.Sprintf("{%s}:", key),
			Default: out[key],
		}

		var value string
		if err := survey.AskOne(prompt, &value); err != nil {
			return nil, fmt.Errorf("prompt for %s aborted: %w", key, err)
		}
		if value != "" {
			out[key] = value
		}
	}

	return out, nil
}

// confirmDirtyOverwrite asks whether files with uncommitted local changes
// should be overwritten. Defaults to no.
func confirmDirtyOverwrite(paths []string) bool {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	printWarning(fmt.Sprintf("%d file(s) have uncommitted local changes:", len(sorted)))
	for _, path := range sorted {
		printListItem(path)
	}

	confirm := &survey.Confirm{
		Message: "Overwrite them?",
		Default: false,
	}

	var overwrite bool
	if err := survey.AskOne(confirm, &overwrite); err != nil {
		return false
	}
	return overwrite
}
