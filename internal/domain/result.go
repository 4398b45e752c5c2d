package domain

import "time"

// Outcome is the final verdict for one executed case
type Outcome string

const (
	OutcomePassed   Outcome = "passed"
	OutcomeMismatch Outcome = "mismatch"
	OutcomeError    Outcome = "error"
)

// CaseResult represents the result of executing and comparing one case
type CaseResult struct {
	Dir       string        `json:"dir"`
	RealWorld bool          `json:"real_world"`
	Outcome   Outcome       `json:"outcome"`
	Error     string        `json:"error,omitempty"`
	Diff      string        `json:"diff,omitempty"`
	Duration  time.Duration `json:"-"`
	Seconds   float64       `json:"duration_seconds"`
}

// Failed reports whether the case did not pass
func (r CaseResult) Failed() bool {
	return r.Outcome != OutcomePassed
}

// RunMeta contains metadata about a harness run
type RunMeta struct {
	Root            string  `json:"root"`
	DiscoveredDirs  int     `json:"discovered_dirs"`
	RunnableCases   int     `json:"runnable_cases"`
	ExecutedCases   int     `json:"executed_cases"`
	PassedCases     int     `json:"passed_cases"`
	MismatchedCases int     `json:"mismatched_cases"`
	ErroredCases    int     `json:"errored_cases"`
	FailFast        bool    `json:"fail_fast"`
	RealWorld       bool    `json:"real_world"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunRecord is the persisted record of the last harness run
type RunRecord struct {
	Meta  RunMeta      `json:"meta"`
	Cases []CaseResult `json:"cases"`
}

// Failures returns the cases that did not pass, in execution order
func (r *RunRecord) Failures() []CaseResult {
	var failed []CaseResult
	for _, c := range r.Cases {
		if c.Failed() {
			failed = append(failed, c)
		}
	}
	return failed
}
