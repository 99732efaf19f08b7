// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package checkers holds the built-in analysis passes. Each checker is
// self-contained and deterministic; Descriptors is the single
// registration point consumed by the orchestrator.
package checkers

import (
	"strings"
	"unicode"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/capability"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
)

// Descriptors lists every built-in checker in execution order. Order is
// part of the output contract: issue ordering in a review follows it.
func Descriptors() []checker.Descriptor {
	return []checker.Descriptor{
		{
			Key:          "passive",
			Category:     "grammar",
			RuleIDPrefix: "GRM",
			New:          func() checker.Checker { return &passiveChecker{} },
		},
		{
			Key:          "acronym",
			Category:     "acronym",
			RuleIDPrefix: "ACR",
			New:          func() checker.Checker { return &acronymChecker{} },
		},
		{
			Key:          "readability",
			Category:     "readability",
			RuleIDPrefix: "RDB",
			New:          func() checker.Checker { return &readabilityChecker{} },
		},
		{
			Key:          "structure",
			Category:     "structure",
			RuleIDPrefix: "STR",
			New:          func() checker.Checker { return &structureChecker{} },
		},
		{
			Key:          "tables",
			Category:     "compliance",
			RuleIDPrefix: "TBL",
			New:          func() checker.Checker { return &tablesChecker{} },
		},
		{
			Key:                  "spelling",
			Category:             "spelling",
			RuleIDPrefix:         "SPL",
			RequiredCapabilities: []string{capability.StatisticalSpellcheck},
			New:                  func() checker.Checker { return &spellingChecker{} },
		},
		{
			Key:                  "claritystyle",
			Category:             "style",
			RuleIDPrefix:         "STY",
			RequiredCapabilities: []string{capability.LanguageModel},
			New:                  func() checker.Checker { return &clarityChecker{} },
		},
	}
}

// splitSentences cuts text at terminal punctuation. Good enough for
// length statistics; it does not try to handle abbreviations.
func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

// wordTokens splits on non-letter boundaries, preserving case.
func wordTokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// snippet trims s to a short excerpt for issue context.
func snippet(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if i := strings.LastIndexByte(cut, ' '); i > max/2 {
		cut = cut[:i]
	}
	return cut + "…"
}
