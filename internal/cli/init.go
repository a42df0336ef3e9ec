package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/skel/internal/app"
	"github.com/tacogips/skel/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init <target-dir>",
	Short: "Populate a project directory from a skeleton template",
	Long: `Populate <target-dir> from a skeleton template.

The project name is derived from the target directory's basename; a single
".jl" suffix is stripped ("Foo.jl" and "Foo" both name the project "Foo").
Placeholders like {PKGNAME}, {UUID}, {AUTHOR}, {EMAIL}, {GHUSER} and {YEAR}
are substituted in file names and contents. Author identity comes from git
config (user.name, user.email, github.user) unless overridden with --var.

The target must be a git working tree (or pass --init-repo). Files whose
content already matches are skipped; files with uncommitted local changes
are skipped unless --force is given; everything else is written.

Examples:
  skel init ~/src/MyPkg.jl --init-repo
  skel init . --template minimal
  skel init . --template ./my-template --var AUTHOR="Ada Lovelace"
  skel init . --force
  skel init . --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

// Init command flags
var (
	initTemplate string
	initVars     []string
	initForce    bool
	initDryRun   bool
	initRepo     bool
	initPrompt   bool
)

func init() {
	// Flags for init
	initCmd.Flags().StringVarP(&initTemplate, FlagTemplate, "t", "", DescTemplate)
	initCmd.Flags().StringArrayVar(&initVars, FlagVar, nil, DescVar)
	initCmd.Flags().BoolVarP(&initForce, FlagForce, "f", false, DescForce)
	initCmd.Flags().BoolVar(&initDryRun, FlagDryRun, false, DescDryRun)
	initCmd.Flags().BoolVar(&initRepo, FlagInitRepo, false, DescInitRepo)
	initCmd.Flags().BoolVar(&initPrompt, FlagPrompt, false, DescPrompt)
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	vars, err := parseVarFlags(initVars)
	if err != nil {
		return err
	}
	// Config file placeholders sit below --var values.
	for key, value := range cfg.Placeholders {
		if _, ok := vars[key]; !ok {
			vars[key] = value
		}
	}

	if initPrompt {
		vars, err = promptForPlaceholders(vars)
		if err != nil {
			return err
		}
	}

	template := initTemplate
	if template == "" {
		template = cfg.Template
	}

	opts := app.InitOptions{
		TargetDir:      targetDir,
		Template:       template,
		Vars:           vars,
		OverwriteDirty: initForce,
		DryRun:         initDryRun,
		InitRepo:       initRepo,
	}
	if !initForce && !initDryRun && !globalQuiet && interactive() {
		opts.ConfirmDirty = confirmDirtyOverwrite
	}

	result, err := app.Init(cmd.Context(), opts)
	if err != nil {
		printErrorMsg(fmt.Sprintf("Initialization failed: %v", err))
		return err
	}

	printReport(result)
	return nil
}

// loadConfig loads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig() (*config.Config, error) {
	path := globalConfig
	if path == "" {
		path = config.DefaultPath()
	}
	return config.NewLoader().LoadOrDefault(path)
}

// printReport prints the per-bucket outcome of an init run.
func printReport(result *app.InitResult) {
	if result.Report.DryRun {
		printWarning("Dry run: no files were written")
	}

	verb := "Written"
	if result.Report.DryRun {
		verb = "Would write"
	}
	printHeader(fmt.Sprintf("%s (%d)", verb, len(result.Report.Written)))
	for _, path := range result.Report.Written {
		printListItem(path)
	}

	if len(result.Report.SkippedSame) > 0 {
		printHeader(fmt.Sprintf("Skipped, unchanged (%d)", len(result.Report.SkippedSame)))
		for _, path := range result.Report.SkippedSame {
			printListItem(path)
		}
	}

	if len(result.Report.SkippedDirty) > 0 {
		printHeader(fmt.Sprintf("Skipped, uncommitted local changes (%d)", len(result.Report.SkippedDirty)))
		for _, path := range result.Report.SkippedDirty {
			printListItem(path)
		}
		printInfo("")
		printInfo("(commit or stash these files, or rerun with --force to overwrite)")
	}

	printInfo("")
	printSuccess(fmt.Sprintf("Project %s initialized from %s", result.ProjectName, result.Source))
}
