package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tacogips/skel/internal/logging"
)

// Global flags
var (
	globalNoColor   bool
	globalQuiet     bool
	globalVerbosity int
	globalConfig    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "skel",
	Short: "Package skeleton generator",
	Long: `skel populates a directory from a skeleton template, substituting
{PLACEHOLDER} tokens in file names and contents.

The target directory is expected to be a git working tree. Before writing,
every template file is reconciled against git status: files that already
match are skipped, files with uncommitted local changes are protected
unless --force is given, and everything else is written.

Use "skel init <target-dir>" to populate a project directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !globalNoColor && !isatty.IsTerminal(os.Stderr.Fd()) {
			globalNoColor = true
		}
		logging.Setup(globalVerbosity, globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().CountVarP(&globalVerbosity, FlagVerbose, "v", DescVerbose)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
