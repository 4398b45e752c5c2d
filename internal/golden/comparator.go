// Package golden captures a case's golden output, lets the tool regenerate
// it and compares the two.
package golden

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"ggtest/internal/domain"
)

var (
	// ErrMismatch is returned when the regenerated output differs from the golden output
	ErrMismatch = errors.New("output mismatch")
	// ErrNotRegenerated is returned when the tool did not write the output fixture
	ErrNotRegenerated = errors.New("output not regenerated")
)

// Diff labels, golden is "from" and fresh is "to"
const (
	FromLabel = "intended output"
	ToLabel   = "actual output"
)

// MismatchError carries the diff for a mismatched case
type MismatchError struct {
	Mismatch domain.Mismatch
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMismatch, e.Mismatch.Dir)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// ExecFunc runs the tool for the case being checked
type ExecFunc func(ctx context.Context) error

// Comparator checks one case against its golden output
type Comparator struct {
	context int
}

// NewComparator creates a Comparator producing diffs with 3 lines of context
func NewComparator() *Comparator {
	return &Comparator{context: 3}
}

// Check reads and deletes the golden output, runs exec, then reads the
// regenerated output and compares. A mismatch is returned as a
// *MismatchError alongside the execution result.
//
// If exec fails or leaves no output file behind, the golden content is
// written back so the fixture is not lost.
func (c *Comparator) Check(ctx context.Context, tc domain.TestCase, exec ExecFunc) (*domain.ExecutionResult, error) {
	info, err := os.Stat(tc.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("read golden output %s: %w", tc.OutputPath, err)
	}
	raw, err := os.ReadFile(tc.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("read golden output %s: %w", tc.OutputPath, err)
	}
	golden := strings.TrimSpace(string(raw))

	if err := os.Remove(tc.OutputPath); err != nil {
		return nil, fmt.Errorf("remove golden output %s: %w", tc.OutputPath, err)
	}

	restore := func(cause error) error {
		if _, statErr := os.Stat(tc.OutputPath); errors.Is(statErr, fs.ErrNotExist) {
			if werr := os.WriteFile(tc.OutputPath, raw, info.Mode().Perm()); werr != nil {
				return errors.Join(cause, fmt.Errorf("restore golden output %s: %w", tc.OutputPath, werr))
			}
		}
		return cause
	}

	if err := exec(ctx); err != nil {
		return nil, restore(err)
	}

	fresh, err := readOutput(tc.OutputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrNotRegenerated, tc.OutputPath)
		} else {
			err = fmt.Errorf("read fresh output %s: %w", tc.OutputPath, err)
		}
		return nil, restore(err)
	}

	result := &domain.ExecutionResult{Case: tc, Golden: golden, Fresh: fresh}
	if golden == fresh {
		return result, nil
	}

	diff, err := c.Diff(golden, fresh)
	if err != nil {
		return result, fmt.Errorf("diff %s: %w", tc.Dir, err)
	}
	return result, &MismatchError{Mismatch: domain.Mismatch{Dir: tc.Dir, Diff: diff}}
}

// Diff returns a unified diff from golden to fresh
func (c *Comparator) Diff(golden, fresh string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(golden),
		B:        difflib.SplitLines(fresh),
		FromFile: FromLabel,
		ToFile:   ToLabel,
		Context:  c.context,
	})
}

// readOutput returns the file content with surrounding whitespace removed
func readOutput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
