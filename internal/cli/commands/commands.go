package commands

import (
	"io"

	"ggtest/internal/cli"
	"ggtest/internal/config"
	"ggtest/internal/discovery"
	"ggtest/internal/execution"
	"ggtest/internal/golden"
	"ggtest/internal/storage"
	"ggtest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies. Diffs and listings
// are written to stdout, log lines go through logger.
func NewCommands(cfg *config.Config, logger *ui.Logger, stdout io.Writer) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.RealWorldDir, cfg.StateDir, cfg.InputFile, cfg.OutputFile)
	filter := discovery.NewFilter()
	runner := execution.NewRunner(cfg, execution.OSRunner{}, logger)
	formatter := ui.NewFormatter(stdout)
	suite := execution.NewSuite(runner, golden.NewComparator(), logger, formatter)
	jsonStorage := storage.NewJSONStorage(cfg)
	failureViewer := ui.NewFailureViewer(stdout)

	return &Commands{
		Run:      NewRunCommand(cfg, logger, scanner, filter, runner, suite, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return cfg.LoadEnv()
	}

	rootCmd.PersistentFlags().StringVarP(&flags.Root, "root", "r", config.DefaultRoot, "Test root containing one directory per case")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the golden regression cases",
		Long:    "Normalize fixture paths, discover cases and compare the analysis tool's output against each golden output.json",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Run test for real-world projects too")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show tool output")
	runCmd.Flags().BoolVarP(&flags.DryRun, "dryrun", "n", false, "Only list test cases, do not run them")
	runCmd.Flags().StringVar(&flags.ToolPath, "tool", "", "Path to the local analysis tool (default <root>/tool)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'issue-2*' or 'docker/*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", true, "Stop at the first execution error or mismatch")
	runCmd.Flags().BoolVar(&flags.NoNormalize, "no-normalize", false, "Do not rewrite fixture paths before running")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered cases",
		Long:    "Scan the test root and classify every case directory without running anything",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Include real-world projects")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failed cases interactively",
		Long:    "Display the mismatches and errors of the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)
}
