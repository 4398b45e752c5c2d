package cli

import "ggtest/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Root:        f.Root,
		ToolPath:    f.ToolPath,
		All:         f.All,
		Verbose:     f.Verbose,
		DryRun:      f.DryRun,
		FailFast:    f.FailFast,
		NoNormalize: f.NoNormalize,
		NameFilter:  f.NameFilter,
	}
}
