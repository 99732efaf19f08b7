// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Severity ranks an issue. The numeric values form a total order used
// for floor filtering and score weighting.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityInfo:     "info",
	SeverityLow:      "low",
	SeverityMedium:   "medium",
	SeverityHigh:     "high",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity converts a severity name to its value. Matching is
// case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for sev, name := range severityNames {
		if name == lower {
			return sev, nil
		}
	}
	return SeverityInfo, fmt.Errorf("unknown severity %q", s)
}

// MarshalText implements encoding.TextMarshaler so severities render as
// names in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// Issue is one reported problem instance.
type Issue struct {
	// Checker is the registry key of the checker that emitted the issue.
	// The orchestrator fills it in; checkers leave it empty.
	Checker string `json:"checker" yaml:"checker"`

	Severity Severity `json:"severity" yaml:"severity"`

	// Category tags the issue for summary counts (e.g. "grammar").
	Category string `json:"category" yaml:"category"`

	// RuleID is stable across releases and unique across checkers; the
	// registry enforces per-checker prefixes at startup.
	RuleID string `json:"rule_id" yaml:"rule_id"`

	Message    string `json:"message" yaml:"message"`
	Context    string `json:"context,omitempty" yaml:"context,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`

	// ParagraphIndex points into ExtractionResult.Paragraphs. It is a
	// positional reference, not an owned object; -1 means document level.
	ParagraphIndex int `json:"paragraph_index" yaml:"paragraph_index"`
}
