package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ErrExecution is returned when the tool or the container exits unsuccessfully
var ErrExecution = errors.New("execution failed")

// Invocation is a single external process call
type Invocation struct {
	Argv   []string
	Image  string // container image, empty for local runs
	Dir    string
	Stdout io.Writer // nil discards
	Stderr io.Writer // nil discards
}

// CommandRunner executes an invocation and blocks until it exits
type CommandRunner interface {
	Run(ctx context.Context, inv Invocation) error
}

// OSRunner executes invocations on the host
type OSRunner struct{}

// Run executes argv directly, without a shell
func (OSRunner) Run(ctx context.Context, inv Invocation) error {
	if len(inv.Argv) == 0 {
		return fmt.Errorf("%w: empty argv", ErrExecution)
	}
	// #nosec G204 -- argv is built from the test tree and harness config.
	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: run %q: %w", ErrExecution, inv.Argv, err)
	}
	return nil
}
