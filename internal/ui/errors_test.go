package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"ggtest/internal/domain"
)

func TestFailureViewer_NoFailures(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	viewer := NewFailureViewer(&buf)

	err := viewer.View(&domain.RunRecord{
		Cases: []domain.CaseResult{{Dir: "case-a", Outcome: domain.OutcomePassed}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No failed cases") {
		t.Errorf("expected no-failures message, got %q", buf.String())
	}
}

func TestFormatCaseDetails(t *testing.T) {
	details := formatCaseDetails(domain.CaseResult{
		Dir:     "case-b",
		Outcome: domain.OutcomeMismatch,
		Diff:    "--- intended output\n+++ actual output\n@@ -1 +1 @@\n-{\"a\": 1}\n+{\"a\": 2}\n",
	})

	for _, want := range []string{
		`[red]-{"a": 1}[white]`,
		`[green]+{"a": 2}[white]`,
		"[cyan]@@ -1 +1 @@[white]",
	} {
		if !strings.Contains(details, want) {
			t.Errorf("expected %q in details:\n%s", want, details)
		}
	}
}

func TestListItemText(t *testing.T) {
	if got := listItemText(0, domain.CaseResult{Dir: "case-c", Outcome: domain.OutcomeError}); !strings.Contains(got, "[yellow]E") {
		t.Errorf("expected error marker, got %q", got)
	}
	if got := listItemText(1, domain.CaseResult{Dir: "case-b", Outcome: domain.OutcomeMismatch}); !strings.Contains(got, "2. case-b") {
		t.Errorf("expected numbered entry, got %q", got)
	}
}
