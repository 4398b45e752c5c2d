package execution

import (
	"context"
	"fmt"
	"io"
	"path"

	"ggtest/internal/config"
	"ggtest/internal/domain"
)

// Logger receives invocation details before a process starts
type Logger interface {
	Infof(format string, args ...any)
}

// Runner invokes the analysis tool for a single case
type Runner struct {
	config *config.Config
	cmd    CommandRunner
	logger Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a new Runner. Tool output is discarded unless
// SetOutput is called.
func NewRunner(cfg *config.Config, cmd CommandRunner, logger Logger) *Runner {
	return &Runner{config: cfg, cmd: cmd, logger: logger}
}

// SetOutput passes the tool's output streams through to w
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// Command builds the invocation for a case
func (r *Runner) Command(tc domain.TestCase) (Invocation, error) {
	inv := Invocation{Stdout: r.stdout, Stderr: r.stderr}

	if !tc.RealWorld {
		inv.Argv = []string{r.config.GetToolPath(), tc.InputPath}
		return inv, nil
	}

	image, err := ImageFor(r.config.ImageNamespace, tc.Dir)
	if err != nil {
		return Invocation{}, err
	}

	mountRoot := r.config.ContainerRoot
	argv := []string{
		r.config.ContainerRuntime, "run", "-t",
		"-v", r.config.GetMount(),
		image,
	}
	if r.config.PrivilegeCommand != "" {
		argv = append(argv, r.config.PrivilegeCommand)
	}
	argv = append(argv, path.Join(mountRoot, r.config.ContainerTool))
	argv = append(argv, r.config.ContainerToolFlags...)
	argv = append(argv, path.Join(r.config.GetContainerFixtureRoot(), tc.Dir, r.config.InputFile))

	inv.Argv = argv
	inv.Image = image
	return inv, nil
}

// Run executes the tool for a case and waits for it to exit. The tool is
// expected to overwrite the case's output fixture.
func (r *Runner) Run(ctx context.Context, tc domain.TestCase) error {
	inv, err := r.Command(tc)
	if err != nil {
		return fmt.Errorf("case %s: %w: %w", tc.Dir, ErrExecution, err)
	}
	if r.logger != nil {
		if inv.Image != "" {
			r.logger.Infof("  Docker image: %s", inv.Image)
		}
		r.logger.Infof("  Running command: %q", inv.Argv)
	}
	if err := r.cmd.Run(ctx, inv); err != nil {
		return fmt.Errorf("case %s: %w", tc.Dir, err)
	}
	return nil
}
