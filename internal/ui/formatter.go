package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ggtest/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintDiff writes a unified diff, coloring added and removed lines
func (f *Formatter) PrintDiff(diff string) {
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			white.Fprint(f.out, line)
		case strings.HasPrefix(line, "@@"):
			cyan.Fprint(f.out, line)
		case strings.HasPrefix(line, "+"):
			green.Fprint(f.out, line)
		case strings.HasPrefix(line, "-"):
			red.Fprint(f.out, line)
		default:
			fmt.Fprint(f.out, line)
		}
	}
	if !strings.HasSuffix(diff, "\n") {
		fmt.Fprintln(f.out)
	}
}

// PrintCaseList prints every discovered directory as a tree, grouping
// real-world cases under their reserved directory
func (f *Formatter) PrintCaseList(classifications []domain.Classification) {
	runnable := 0
	for _, c := range classifications {
		if c.Status == domain.StatusOK {
			runnable++
		}
	}
	green.Fprintf(f.out, "Found %d director(ies), %d runnable case(s):\n\n", len(classifications), runnable)

	for i, c := range classifications {
		connector := "├── "
		if i == len(classifications)-1 {
			connector = "└── "
		}

		name := c.Dir
		if c.RealWorld {
			name += " " + yellow.Sprint("[real-world]")
		}

		status := green.Sprint(c.Status)
		if c.Status != domain.StatusOK {
			status = red.Sprint(c.Status)
		}
		fmt.Fprintf(f.out, "%s%s  %s\n", cyan.Sprint(connector), name, status)
	}
}

// PrintSummary prints the statistics of a finished run followed by the
// failed cases
func (f *Formatter) PrintSummary(record *domain.RunRecord) {
	meta := record.Meta

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                     Golden Test Statistics                    ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	const sep = "├─────────────────────────────────┼─────────────────────────────┤"
	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")

	rows := []struct {
		label string
		value string
		color *color.Color
	}{
		{"Discovered Directories", fmt.Sprint(meta.DiscoveredDirs), white},
		{"Runnable Cases", fmt.Sprint(meta.RunnableCases), white},
		{"Executed Cases", fmt.Sprint(meta.ExecutedCases), white},
		{"Passed Cases", fmt.Sprint(meta.PassedCases), green},
		{"Mismatched Cases", fmt.Sprint(meta.MismatchedCases), red},
		{"Errored Cases", fmt.Sprint(meta.ErroredCases), red},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white},
		{"Timestamp", meta.Timestamp, white},
	}
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.color.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprint(f.out, " │\n")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, sep)
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	failures := record.Failures()
	if len(failures) == 0 {
		green.Fprintln(f.out, "✓ All cases passed!")
		return
	}

	red.Fprintf(f.out, "✗ %d case(s) failed\n", len(failures))
	for i, c := range failures {
		connector := "  |_"
		if i == len(failures)-1 {
			connector = "   |_"
		}
		detail := string(c.Outcome)
		if c.Error != "" && c.Outcome == domain.OutcomeError {
			detail = c.Error
		}
		fmt.Fprintf(f.out, "%s%s  %s\n", connector, yellow.Sprint(c.Dir), red.Sprint(detail))
	}
}
