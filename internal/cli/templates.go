package cli

import (
	"github.com/spf13/cobra"

	"github.com/tacogips/skel/internal/skeleton/source"
)

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in templates",
	Long: `List the names of templates embedded in the skel binary.

Any of these names can be passed to "skel init --template". A directory
path works as a template too.`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	printHeader("Built-in templates")
	for _, name := range source.BuiltinNames() {
		if name == source.DefaultTemplate {
			printListItem(name + " (default)")
			continue
		}
		printListItem(name)
	}
	return nil
}
