package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ggtest/internal/config"
	"ggtest/internal/discovery"
	"ggtest/internal/domain"
	"ggtest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	result, err := lc.scanner.Scan(lc.config.GetRoot(), lc.config.Flags.All)
	if err != nil {
		return err
	}

	var shown []domain.Classification
	for _, c := range result.Classifications {
		if discovery.Matches(c.Dir, lc.config.Flags.NameFilter) {
			shown = append(shown, c)
		}
	}

	if len(shown) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No case directories found")
		return nil
	}

	lc.formatter.PrintCaseList(shown)
	return nil
}
