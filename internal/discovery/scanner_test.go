package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"ggtest/internal/domain"
)

const caseTree = `
-- case-b/input.json --
{}
-- case-b/output.json --
{}
-- case-a/input.json --
{}
-- case-a/output.json --
{}
-- only-input/input.json --
{}
-- only-output/output.json --
{}
-- empty/README --
neither fixture
-- docker/zlib-1.3/input.json --
{}
-- docker/zlib-1.3/output.json --
{}
-- docker/lua-5.4/input.json --
{}
-- .ggtest/last-run.json --
{}
-- .cache/input.json --
{}
-- tool --
#!/bin/sh
`

func writeTree(t *testing.T, archive string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		path := filepath.Join(root, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f.Name, err)
		}
	}
	return root
}

func TestScanner_Scan(t *testing.T) {
	root := writeTree(t, caseTree)
	scanner := NewScanner("docker", ".ggtest", "input.json", "output.json")

	t.Run("classifies local cases in lexical order", func(t *testing.T) {
		result, err := scanner.Scan(root, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []domain.Classification{
			{Dir: ".cache", Status: domain.StatusMissingOutput},
			{Dir: "case-a", Status: domain.StatusOK},
			{Dir: "case-b", Status: domain.StatusOK},
			{Dir: "docker", Status: domain.StatusMissingInput},
			{Dir: "empty", Status: domain.StatusMissingInput},
			{Dir: "only-input", Status: domain.StatusMissingOutput},
			{Dir: "only-output", Status: domain.StatusMissingInput},
		}
		if diff := cmp.Diff(want, result.Classifications); diff != "" {
			t.Errorf("classifications mismatch (-want +got):\n%s", diff)
		}

		wantCases := []domain.TestCase{
			{
				Dir:        "case-a",
				InputPath:  filepath.Join(root, "case-a", "input.json"),
				OutputPath: filepath.Join(root, "case-a", "output.json"),
			},
			{
				Dir:        "case-b",
				InputPath:  filepath.Join(root, "case-b", "input.json"),
				OutputPath: filepath.Join(root, "case-b", "output.json"),
			},
		}
		if diff := cmp.Diff(wantCases, result.Cases); diff != "" {
			t.Errorf("cases mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("appends real-world cases when requested", func(t *testing.T) {
		result, err := scanner.Scan(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Classifications) != 9 {
			t.Fatalf("expected 9 candidates, got %d", len(result.Classifications))
		}
		tail := result.Classifications[7:]
		want := []domain.Classification{
			{Dir: "docker/lua-5.4", RealWorld: true, Status: domain.StatusMissingOutput},
			{Dir: "docker/zlib-1.3", RealWorld: true, Status: domain.StatusOK},
		}
		if diff := cmp.Diff(want, tail); diff != "" {
			t.Errorf("real-world classifications mismatch (-want +got):\n%s", diff)
		}

		last := result.Cases[len(result.Cases)-1]
		if !last.RealWorld || last.Dir != "docker/zlib-1.3" {
			t.Errorf("unexpected real-world case: %+v", last)
		}
	})

	t.Run("every complete case appears exactly once", func(t *testing.T) {
		result, err := scanner.Scan(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen := make(map[string]int)
		for _, tc := range result.Cases {
			seen[tc.Dir]++
		}
		for _, dir := range []string{"case-a", "case-b", "docker/zlib-1.3"} {
			if seen[dir] != 1 {
				t.Errorf("expected %s once, got %d", dir, seen[dir])
			}
		}
		if len(seen) != 3 {
			t.Errorf("expected 3 runnable cases, got %v", seen)
		}
	})

	t.Run("discovery is stable across runs", func(t *testing.T) {
		first, err := scanner.Scan(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := scanner.Scan(root, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("discovery changed between runs:\n%s", diff)
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path", false)
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(root, "tool"), false)
		if err == nil {
			t.Error("expected error for file path")
		}
	})

	t.Run("skips only the state directory", func(t *testing.T) {
		result, err := scanner.Scan(root, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, c := range result.Classifications {
			if c.Dir == ".ggtest" {
				t.Errorf("state directory listed as a candidate: %+v", c)
			}
		}
	})
}

func TestScanner_ScanUntaggableRealWorldDir(t *testing.T) {
	root := writeTree(t, `
-- case-a/input.json --
{}
-- case-a/output.json --
{}
-- docker/-x/input.json --
{}
-- docker/-x/output.json --
{}
-- docker/zlib+ng-2.0/input.json --
{}
-- docker/zlib+ng-2.0/output.json --
{}
`)
	scanner := NewScanner("docker", ".ggtest", "input.json", "output.json")

	result, err := scanner.Scan(root, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Classification{
		{Dir: "case-a", Status: domain.StatusOK},
		{Dir: "docker", Status: domain.StatusMissingInput},
		{Dir: "docker/-x", RealWorld: true, Status: domain.StatusOK},
		{Dir: "docker/zlib+ng-2.0", RealWorld: true, Status: domain.StatusOK},
	}
	if diff := cmp.Diff(want, result.Classifications); diff != "" {
		t.Errorf("classifications mismatch (-want +got):\n%s", diff)
	}
	if len(result.Cases) != 3 {
		t.Errorf("expected 3 runnable cases, got %+v", result.Cases)
	}
}

func TestScanner_ScanWithoutRealWorldDir(t *testing.T) {
	root := writeTree(t, `
-- case-a/input.json --
{}
-- case-a/output.json --
{}
`)
	scanner := NewScanner("docker", ".ggtest", "input.json", "output.json")

	result, err := scanner.Scan(root, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Cases) != 1 || result.Cases[0].RealWorld {
		t.Errorf("unexpected cases: %+v", result.Cases)
	}
}
