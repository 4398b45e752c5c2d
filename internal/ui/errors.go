package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ggtest/internal/domain"
)

// FailureViewer displays failed cases and their diffs in an interactive TUI
type FailureViewer struct {
	out io.Writer
}

// NewFailureViewer creates a new FailureViewer. Messages that do not need
// the TUI are written to out.
func NewFailureViewer(out io.Writer) *FailureViewer {
	return &FailureViewer{out: out}
}

// View displays the failures of record
func (fv *FailureViewer) View(record *domain.RunRecord) error {
	failures := record.Failures()
	if len(failures) == 0 {
		green.Fprintln(fv.out, "✓ No failed cases in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, c := range failures {
		list.AddItem(listItemText(i, c), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 3, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed cases (%d of %d executed) | ↑↓ navigate, → view diff, ← back, Ctrl+C exit ",
			len(failures), record.Meta.ExecutedCases))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failures) {
			return
		}
		c := failures[index]
		statsView.SetText(formatCaseStats(c))
		detailsView.SetText(formatCaseDetails(c)).ScrollToBeginning()
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(index int, c domain.CaseResult) string {
	tag := "[red]M"
	if c.Outcome == domain.OutcomeError {
		tag = "[yellow]E"
	}
	return fmt.Sprintf("%s [white]%d. %s", tag, index+1, tview.Escape(c.Dir))
}

// formatCaseStats formats the header line for a failed case
func formatCaseStats(c domain.CaseResult) string {
	mode := "local"
	if c.RealWorld {
		mode = "real-world"
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]  [cyan]mode:[white] %s  [cyan]outcome:[white] [red]%s[white]  [cyan]time:[white] %.2fs",
		tview.Escape(c.Dir), mode, c.Outcome, c.Seconds)
}

// formatCaseDetails renders the diff or error using tview color tags
func formatCaseDetails(c domain.CaseResult) string {
	var b strings.Builder
	if c.Error != "" {
		fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n\n", tview.Escape(c.Error))
	}
	if c.Diff == "" {
		return b.String()
	}

	b.WriteString("[yellow]Diff:[white]\n")
	for _, line := range strings.Split(strings.TrimRight(c.Diff, "\n"), "\n") {
		escaped := tview.Escape(line)
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprintf(&b, "[white::b]%s[-:-:-]\n", escaped)
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintf(&b, "[cyan]%s[white]\n", escaped)
		case strings.HasPrefix(line, "+"):
			fmt.Fprintf(&b, "[green]%s[white]\n", escaped)
		case strings.HasPrefix(line, "-"):
			fmt.Fprintf(&b, "[red]%s[white]\n", escaped)
		default:
			fmt.Fprintf(&b, "%s\n", escaped)
		}
	}
	return b.String()
}
