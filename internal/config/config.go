package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ErrToolMissing is returned when the local analysis tool binary does not exist
var ErrToolMissing = errors.New("tool binary does not exist")

// Config holds all configuration for the harness
type Config struct {
	// Test tree settings
	Root         string
	RealWorldDir string
	InputFile    string
	OutputFile   string

	// Path normalization
	SourceRoot string

	// Container settings for real-world cases
	ContainerRuntime   string
	ImageNamespace     string
	ContainerRoot      string
	ContainerTool      string
	PrivilegeCommand   string
	ContainerToolFlags []string

	// Output settings
	StateDir    string
	ResultsFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Root        string
	ToolPath    string
	All         bool
	Verbose     bool
	DryRun      bool
	FailFast    bool
	NoNormalize bool
	NameFilter  string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Root:             DefaultRoot,
		RealWorldDir:     DefaultRealWorldDir,
		InputFile:        DefaultInputFile,
		OutputFile:       DefaultOutputFile,
		SourceRoot:       DefaultSourceRoot,
		ContainerRuntime: DefaultContainerRuntime,
		ImageNamespace:   DefaultImageNamespace,
		ContainerRoot:    DefaultContainerRoot,
		ContainerTool:    DefaultContainerTool,
		PrivilegeCommand: DefaultPrivilegeCommand,
		StateDir:         DefaultStateDir,
		ResultsFile:      DefaultResultsFile,
		Flags:            Flags{FailFast: true},
	}
	cfg.ContainerToolFlags = make([]string, len(DefaultContainerToolFlags))
	copy(cfg.ContainerToolFlags, DefaultContainerToolFlags)
	return cfg
}

// Load creates a config, applies flags and then environment overrides.
// A .env file in the test root is loaded first; variables already set in
// the process environment win over it.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Apply(flags)
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies parsed flags into the config
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.Root != "" {
		c.Root = flags.Root
	}
}

// LoadEnv reads <root>/.env when present and applies GGTEST_* overrides
func (c *Config) LoadEnv() error {
	envPath := filepath.Join(c.GetRoot(), DefaultEnvFile)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	overrides := map[string]*string{
		EnvSourceRoot:       &c.SourceRoot,
		EnvImageNamespace:   &c.ImageNamespace,
		EnvContainerRuntime: &c.ContainerRuntime,
		EnvContainerRoot:    &c.ContainerRoot,
		EnvContainerTool:    &c.ContainerTool,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
	return nil
}

// GetRoot returns the absolute test root. Fixture paths are rewritten to
// this value, so it must not depend on the working directory.
func (c *Config) GetRoot() string {
	root := c.Root
	if root == "" {
		root = DefaultRoot
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		return resolved
	}
	return root
}

// GetToolPath returns the local tool path, using the flag if provided
func (c *Config) GetToolPath() string {
	if c.Flags.ToolPath != "" {
		if abs, err := filepath.Abs(c.Flags.ToolPath); err == nil {
			return abs
		}
		return c.Flags.ToolPath
	}
	return filepath.Join(c.GetRoot(), DefaultToolName)
}

// CheckTool verifies that the local tool exists before any case runs
func (c *Config) CheckTool() error {
	toolPath := c.GetToolPath()
	info, err := os.Stat(toolPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrToolMissing, toolPath)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrToolMissing, toolPath)
	}
	return nil
}

// GetResultsPath returns the full path of the last-run record
func (c *Config) GetResultsPath() string {
	return filepath.Join(c.GetRoot(), c.StateDir, c.ResultsFile)
}

// GetContainerFixtureRoot returns where the test root appears inside the
// container: the root's parent is mounted at ContainerRoot.
func (c *Config) GetContainerFixtureRoot() string {
	return path.Join(c.ContainerRoot, filepath.Base(c.GetRoot()))
}

// GetMount returns the bind-mount argument for the container runtime
func (c *Config) GetMount() string {
	return fmt.Sprintf("%s:%s", filepath.Dir(c.GetRoot()), c.ContainerRoot)
}
