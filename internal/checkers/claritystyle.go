// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// weaselWords carry no information; each occurrence weakens the text a
// little.
var weaselWords = map[string]bool{
	"very": true, "really": true, "quite": true, "basically": true,
	"clearly": true, "obviously": true, "arguably": true,
	"somewhat": true, "fairly": true, "extremely": true,
	"relatively": true, "various": true, "virtually": true,
}

// hedges are multi-word constructions that dodge commitment.
var hedges = []string{
	"it could be argued",
	"some might say",
	"it is believed",
	"it is thought",
	"it seems that",
	"more or less",
	"for all intents and purposes",
}

type clarityChecker struct{}

func (clarityChecker) Check(paragraphs []types.Paragraph, _ *checker.Context) []types.Issue {
	var issues []types.Issue
	for _, p := range paragraphs {
		lower := strings.ToLower(p.Text)
		for _, tok := range wordTokens(lower) {
			if !weaselWords[tok] {
				continue
			}
			issues = append(issues, types.Issue{
				Severity:       types.SeverityInfo,
				Category:       "style",
				RuleID:         "STY001",
				Message:        fmt.Sprintf("weasel word %q", tok),
				Context:        snippet(p.Text, 80),
				Suggestion:     "cut the qualifier or replace it with a measurement",
				ParagraphIndex: p.Index,
			})
		}
		for _, h := range hedges {
			if !strings.Contains(lower, h) {
				continue
			}
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       "style",
				RuleID:         "STY002",
				Message:        fmt.Sprintf("hedging phrase %q", h),
				Context:        snippet(p.Text, 80),
				Suggestion:     "state the claim directly and cite its source",
				ParagraphIndex: p.Index,
			})
		}
	}
	return issues
}
