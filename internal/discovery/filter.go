package discovery

import (
	"path"
	"strings"

	"ggtest/internal/domain"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters cases by a pattern matched against the case directory
// name and its path under the root. Supports patterns like "issue-2*" or
// "docker/*", and a plain substring when the pattern has no wildcards.
func (f *Filter) FilterByName(cases []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return cases
	}

	var filtered []domain.TestCase
	for _, tc := range cases {
		if Matches(tc.Dir, pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

// Matches reports whether a case directory matches pattern
func Matches(dir, pattern string) bool {
	if pattern == "" {
		return true
	}

	name := path.Base(dir)
	hasWildcard := strings.ContainsAny(pattern, "*?[")

	if !hasWildcard {
		return strings.Contains(dir, pattern)
	}

	// Try both the bare name and the root-relative path
	for _, candidate := range []string{name, dir} {
		if matched, err := path.Match(pattern, candidate); err == nil && matched {
			return true
		}
	}

	// Fall back to an ordered substring match for patterns like "*npe*source*"
	parts := strings.Split(pattern, "*")
	rest := dir
	nonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.ContainsAny(part, "?[") {
			return false
		}
		nonEmpty = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return nonEmpty
}
