package discovery

import (
	"testing"

	"ggtest/internal/domain"
)

func casesFor(dirs ...string) []domain.TestCase {
	cases := make([]domain.TestCase, 0, len(dirs))
	for _, d := range dirs {
		cases = append(cases, domain.TestCase{Dir: d})
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	all := casesFor("issue-143", "issue-231a", "issue-231b", "npe-good-source", "rl-good-source", "docker/zlib-1.3")

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{name: "empty pattern returns all", pattern: "", expected: 6},
		{name: "wildcard pattern matches prefix", pattern: "issue-231*", expected: 2},
		{name: "wildcard pattern matches substring", pattern: "*good*", expected: 2},
		{name: "simple contains match", pattern: "143", expected: 1},
		{name: "relative path pattern", pattern: "docker/*", expected: 1},
		{name: "base name of nested case", pattern: "zlib-*", expected: 1},
		{name: "no matches", pattern: "*NonExistent*", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(all, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty case list", func(t *testing.T) {
		result := filter.FilterByName(nil, "issue-*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("pattern with multiple wildcards keeps order", func(t *testing.T) {
		result := filter.FilterByName(casesFor("npe-good-source", "rl-good-source", "npe-source-macro"), "*npe*source*")
		if len(result) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(result))
		}
		if result[0].Dir != "npe-good-source" || result[1].Dir != "npe-source-macro" {
			t.Errorf("unexpected order: %+v", result)
		}
	})

	t.Run("only wildcards matches nothing extra", func(t *testing.T) {
		if !Matches("case-a", "*") {
			t.Error("expected * to match via path.Match")
		}
	})
}
