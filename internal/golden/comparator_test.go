package golden

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ggtest/internal/domain"
)

func newCase(t *testing.T, golden string) domain.TestCase {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "case-a")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create case dir: %v", err)
	}
	tc := domain.TestCase{
		Dir:        "case-a",
		InputPath:  filepath.Join(dir, "input.json"),
		OutputPath: filepath.Join(dir, "output.json"),
	}
	if err := os.WriteFile(tc.InputPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	if err := os.WriteFile(tc.OutputPath, []byte(golden), 0644); err != nil {
		t.Fatalf("failed to write output: %v", err)
	}
	return tc
}

// writes returns an ExecFunc that behaves like the tool writing content
func writes(t *testing.T, tc domain.TestCase, content string) ExecFunc {
	return func(context.Context) error {
		if _, err := os.Stat(tc.OutputPath); err == nil {
			t.Errorf("golden output should be deleted before the tool runs")
		}
		return os.WriteFile(tc.OutputPath, []byte(content), 0644)
	}
}

func TestComparator_Check(t *testing.T) {
	comparator := NewComparator()
	ctx := context.Background()

	t.Run("identical output passes", func(t *testing.T) {
		tc := newCase(t, "{\"paths\": []}\n")
		result, err := comparator.Check(ctx, tc, writes(t, tc, "{\"paths\": []}\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Golden != result.Fresh {
			t.Errorf("expected equal outputs, got %q and %q", result.Golden, result.Fresh)
		}
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		tc := newCase(t, "\n  {\"paths\": []}\n\n")
		if _, err := comparator.Check(ctx, tc, writes(t, tc, "{\"paths\": []}")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("different output returns a mismatch with diff", func(t *testing.T) {
		tc := newCase(t, "{\n  \"a\": 1\n}\n")
		_, err := comparator.Check(ctx, tc, writes(t, tc, "{\n  \"a\": 2\n}\n"))
		if !errors.Is(err, ErrMismatch) {
			t.Fatalf("expected ErrMismatch, got %v", err)
		}
		var mismatch *MismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected *MismatchError, got %T", err)
		}

		want := strings.Join([]string{
			"--- intended output",
			"+++ actual output",
			"@@ -1,3 +1,3 @@",
			" {",
			"-  \"a\": 1",
			"+  \"a\": 2",
			" }",
			"",
		}, "\n")
		if diff := cmp.Diff(want, mismatch.Mismatch.Diff); diff != "" {
			t.Errorf("unexpected unified diff (-want +got):\n%s", diff)
		}

		// The regenerated output stays on disk for inspection
		data, _ := os.ReadFile(tc.OutputPath)
		if !strings.Contains(string(data), "2") {
			t.Errorf("expected fresh output on disk, got %q", data)
		}
	})

	t.Run("restored golden reproduces the same diff", func(t *testing.T) {
		golden := "{\"paths\": [1]}\n"
		tc := newCase(t, golden)
		_, first := comparator.Check(ctx, tc, writes(t, tc, "{\"paths\": [2]}\n"))
		if err := os.WriteFile(tc.OutputPath, []byte(golden), 0644); err != nil {
			t.Fatalf("failed to restore golden: %v", err)
		}
		_, second := comparator.Check(ctx, tc, writes(t, tc, "{\"paths\": [2]}\n"))

		var a, b *MismatchError
		if !errors.As(first, &a) || !errors.As(second, &b) {
			t.Fatalf("expected mismatches, got %v and %v", first, second)
		}
		if a.Mismatch.Diff != b.Mismatch.Diff {
			t.Errorf("diff changed between runs:\n%s", cmp.Diff(a.Mismatch.Diff, b.Mismatch.Diff))
		}
	})

	t.Run("passing check is idempotent", func(t *testing.T) {
		tc := newCase(t, "{}")
		for i := 0; i < 2; i++ {
			if _, err := comparator.Check(ctx, tc, writes(t, tc, "{}")); err != nil {
				t.Fatalf("run %d: unexpected error: %v", i+1, err)
			}
		}
	})

	t.Run("missing regenerated output is a hard error", func(t *testing.T) {
		tc := newCase(t, "{\"golden\": true}")
		_, err := comparator.Check(ctx, tc, func(context.Context) error { return nil })
		if !errors.Is(err, ErrNotRegenerated) {
			t.Fatalf("expected ErrNotRegenerated, got %v", err)
		}
		data, readErr := os.ReadFile(tc.OutputPath)
		if readErr != nil || string(data) != "{\"golden\": true}" {
			t.Errorf("expected golden output restored, got %q (%v)", data, readErr)
		}
	})

	t.Run("execution error restores golden output", func(t *testing.T) {
		errTool := errors.New("tool crashed")
		tc := newCase(t, "{\"golden\": true}")
		_, err := comparator.Check(ctx, tc, func(context.Context) error { return errTool })
		if !errors.Is(err, errTool) {
			t.Fatalf("expected errTool, got %v", err)
		}
		if _, statErr := os.Stat(tc.OutputPath); statErr != nil {
			t.Errorf("expected golden output restored: %v", statErr)
		}
	})

	t.Run("missing golden output is an error", func(t *testing.T) {
		tc := newCase(t, "{}")
		os.Remove(tc.OutputPath)
		called := false
		_, err := comparator.Check(ctx, tc, func(context.Context) error { called = true; return nil })
		if err == nil {
			t.Error("expected error for missing golden output")
		}
		if called {
			t.Error("tool should not run without a golden output")
		}
	})
}
