package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ggtest/internal/cli"
	"ggtest/internal/cli/commands"
	"ggtest/internal/config"
	"ggtest/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "ggtest",
		Short:         "Golden regression harness for the graph-generation tool",
		Long:          `Runs the analysis tool over every case directory of a test tree and compares its output.json against the committed golden copy.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	flags := cli.Flags{FailFast: true}

	// One logger for the whole process
	logger := ui.NewLogger(os.Stderr, "ggtest", false)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(flags.Verbose)
	}

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger, os.Stdout)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
