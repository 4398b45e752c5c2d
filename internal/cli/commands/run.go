package commands

import (
	"fmt"
	"os"
	"time"

	"ggtest/internal/config"
	"ggtest/internal/discovery"
	"ggtest/internal/domain"
	"ggtest/internal/execution"
	"ggtest/internal/normalize"
	"ggtest/internal/storage"
	"ggtest/internal/ui"

	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	logger    *ui.Logger
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	runner    *execution.Runner
	suite     *execution.Suite
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	logger *ui.Logger,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	runner *execution.Runner,
	suite *execution.Suite,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		logger:    logger,
		scanner:   scanner,
		filter:    filter,
		runner:    runner,
		suite:     suite,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags
	root := rc.config.GetRoot()

	if err := rc.config.CheckTool(); err != nil {
		return err
	}
	rc.logger.Infof("Test directory: %s", root)
	rc.logger.Infof("Tool script:    %s", rc.config.GetToolPath())

	// Rewrite fixture paths before anything reads them
	if !flags.NoNormalize {
		rc.logger.Infof("Updating paths: %s -> %s", rc.config.SourceRoot, root)
		rewriter := normalize.NewRewriter(rc.config.SourceRoot, []string{rc.config.RealWorldDir})
		changed, err := rewriter.Rewrite(root)
		if err != nil {
			return fmt.Errorf("update paths: %w", err)
		}
		for _, path := range changed {
			rc.logger.Debugf("  rewrote %s", path)
		}
	}

	// Discover cases
	result, err := rc.scanner.Scan(root, flags.All)
	if err != nil {
		return err
	}
	rc.logger.Infof("Found %d directories", len(result.Classifications))
	for _, c := range result.Classifications {
		rc.logger.Infof("  %s: %s", c.Dir, c.Status)
	}
	rc.logger.Infof("Found %d test cases", len(result.Cases))

	if flags.DryRun {
		return nil
	}

	cases := rc.filter.FilterByName(result.Cases, flags.NameFilter)
	if flags.NameFilter != "" {
		rc.logger.Infof("%d test case(s) match %q", len(cases), flags.NameFilter)
	}
	if len(cases) == 0 {
		rc.logger.Warnf("No test cases to execute")
		return nil
	}

	if rc.logger.Verbose() {
		rc.runner.SetOutput(os.Stdout, os.Stderr)
	} else if !flags.FailFast && ui.StderrIsTerminal() {
		progressBar := ui.NewProgressBar(len(cases), os.Stderr)
		rc.suite.SetProgress(progressBar)
		rc.logger.Attach(progressBar)
		defer rc.logger.Attach(nil)
	}

	// Execute cases
	results, duration, runErr := rc.suite.Execute(cmd.Context(), cases, flags.FailFast)

	record := newRunRecord(rc.config, len(result.Classifications), len(cases), results, duration)
	if err := rc.storage.Save(record); err != nil {
		if runErr == nil {
			return fmt.Errorf("failed to save run record: %w", err)
		}
		rc.logger.Warnf("failed to save run record: %v", err)
	}

	if runErr != nil {
		return runErr
	}
	if flags.FailFast {
		return nil
	}

	rc.formatter.PrintSummary(record)
	if failed := len(record.Failures()); failed > 0 {
		return fmt.Errorf("%d of %d case(s) failed", failed, len(results))
	}
	return nil
}

func newRunRecord(cfg *config.Config, discovered, runnable int, results []domain.CaseResult, duration time.Duration) *domain.RunRecord {
	meta := domain.RunMeta{
		Root:            cfg.GetRoot(),
		DiscoveredDirs:  discovered,
		RunnableCases:   runnable,
		ExecutedCases:   len(results),
		FailFast:        cfg.Flags.FailFast,
		RealWorld:       cfg.Flags.All,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
	for _, r := range results {
		switch r.Outcome {
		case domain.OutcomePassed:
			meta.PassedCases++
		case domain.OutcomeMismatch:
			meta.MismatchedCases++
		case domain.OutcomeError:
			meta.ErroredCases++
		}
	}
	return &domain.RunRecord{Meta: meta, Cases: results}
}
