package execution

import (
	"context"
	"errors"
	"time"

	"ggtest/internal/domain"
	"ggtest/internal/golden"
)

// CaseRunner runs the analysis tool for one case
type CaseRunner interface {
	Run(ctx context.Context, tc domain.TestCase) error
}

// SuiteLogger reports per-case progress
type SuiteLogger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// DiffPrinter emits the diff of a mismatched case
type DiffPrinter interface {
	PrintDiff(diff string)
}

// Progress tracks finished cases
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Suite runs cases one after another, each one executed and then compared
// against its golden output before the next starts
type Suite struct {
	runner     CaseRunner
	comparator *golden.Comparator
	logger     SuiteLogger
	diffs      DiffPrinter
	progress   Progress
}

// NewSuite creates a new Suite
func NewSuite(runner CaseRunner, comparator *golden.Comparator, logger SuiteLogger, diffs DiffPrinter) *Suite {
	return &Suite{
		runner:     runner,
		comparator: comparator,
		logger:     logger,
		diffs:      diffs,
	}
}

// SetProgress sets the progress bar for the suite
func (s *Suite) SetProgress(progress Progress) {
	s.progress = progress
}

// Execute runs cases in order. With failFast the first execution error or
// mismatch stops the run and is returned. Otherwise every case runs and
// failures are only reported through the results.
func (s *Suite) Execute(ctx context.Context, cases []domain.TestCase, failFast bool) ([]domain.CaseResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.CaseResult, 0, len(cases))
	passed, failed := 0, 0

	defer func() {
		if s.progress != nil {
			s.progress.Finish()
		}
	}()

	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), err
		}

		result, err := s.runCase(ctx, tc)
		results = append(results, result)

		if result.Failed() {
			failed++
		} else {
			passed++
		}
		if s.progress != nil {
			s.progress.Update(passed, failed)
		}

		if err != nil && (failFast || ctx.Err() != nil) {
			return results, time.Since(startTime), err
		}
	}

	return results, time.Since(startTime), nil
}

func (s *Suite) runCase(ctx context.Context, tc domain.TestCase) (domain.CaseResult, error) {
	s.logger.Infof("Running test case: %s", tc.Dir)
	if tc.RealWorld {
		s.logger.Infof("  Real-world testcase!")
	}

	start := time.Now()
	_, err := s.comparator.Check(ctx, tc, func(ctx context.Context) error {
		return s.runner.Run(ctx, tc)
	})
	duration := time.Since(start)

	result := domain.CaseResult{
		Dir:       tc.Dir,
		RealWorld: tc.RealWorld,
		Outcome:   domain.OutcomePassed,
		Duration:  duration,
		Seconds:   duration.Seconds(),
	}
	if err == nil {
		s.logger.Debugf("  Passed in %s", duration.Round(time.Millisecond))
		return result, nil
	}

	result.Error = err.Error()
	var mismatch *golden.MismatchError
	if errors.As(err, &mismatch) {
		result.Outcome = domain.OutcomeMismatch
		result.Diff = mismatch.Mismatch.Diff
		s.logger.Errorf("  Output mismatch: %s", tc.Dir)
		if s.diffs != nil {
			s.diffs.PrintDiff(mismatch.Mismatch.Diff)
		}
		return result, err
	}

	result.Outcome = domain.OutcomeError
	s.logger.Errorf("  Execution failed: %v", err)
	return result, err
}
