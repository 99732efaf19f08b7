// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CheckerFailure records a checker that faulted during a review. The
// message is sanitized; no panic values or stack traces are carried.
type CheckerFailure struct {
	Checker string `json:"checker" yaml:"checker"`
	Message string `json:"message" yaml:"message"`
}

// ReviewResult aggregates the output of one review run. Issues appear in
// checker registration order, then emission order within each checker,
// which together with the determinism contract makes two runs over the
// same input byte-identical.
type ReviewResult struct {
	Issues []Issue `json:"issues" yaml:"issues"`

	// Score is 0-100; Grade is the letter derived from fixed thresholds.
	Score int    `json:"score" yaml:"score"`
	Grade string `json:"grade" yaml:"grade"`

	CategoryCounts map[string]int `json:"category_counts" yaml:"category_counts"`
	SeverityCounts map[string]int `json:"severity_counts" yaml:"severity_counts"`

	// CheckersRun lists the checkers that executed, in order.
	CheckersRun []string `json:"checkers_run" yaml:"checkers_run"`

	// FailedCheckers is diagnostic only; a faulting checker never aborts
	// the review.
	FailedCheckers []CheckerFailure `json:"failed_checkers,omitempty" yaml:"failed_checkers,omitempty"`
}
