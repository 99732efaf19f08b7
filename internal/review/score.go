// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import "github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"

// severityWeights are the per-issue penalties. Heavier severities cost
// disproportionately more so a single critical finding outweighs a pile
// of nits.
var severityWeights = map[string]int{
	types.SeverityInfo.String():     1,
	types.SeverityLow.String():      2,
	types.SeverityMedium.String():   4,
	types.SeverityHigh.String():     8,
	types.SeverityCritical.String(): 15,
}

// Score maps severity tallies to a 0-100 quality score. Adding an issue
// never raises the score; the floor is 0.
func Score(severityCounts map[string]int) int {
	penalty := 0
	for name, count := range severityCounts {
		penalty += severityWeights[name] * count
	}
	if penalty > 100 {
		return 0
	}
	return 100 - penalty
}

// Grade converts a score to its letter at fixed thresholds.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
