// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// headinglessThreshold is the word count past which a document with no
// headings is flagged.
const headinglessThreshold = 1000

type structureChecker struct{}

func (structureChecker) Check(paragraphs []types.Paragraph, rctx *checker.Context) []types.Issue {
	var issues []types.Issue

	empty := true
	for _, p := range paragraphs {
		if strings.TrimSpace(p.Text) != "" {
			empty = false
			break
		}
	}
	if empty {
		return []types.Issue{{
			Severity:       types.SeverityMedium,
			Category:       "structure",
			RuleID:         "STR001",
			Message:        "document contains no extractable text",
			ParagraphIndex: -1,
		}}
	}
	if rctx == nil {
		return nil
	}

	prev := 0
	for _, h := range rctx.Headings {
		if prev > 0 && h.Level > prev+1 {
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       "structure",
				RuleID:         "STR002",
				Message:        fmt.Sprintf("heading level jumps from %d to %d", prev, h.Level),
				Context:        snippet(h.Text, 80),
				Suggestion:     "insert the missing intermediate heading level",
				ParagraphIndex: h.Index,
			})
		}
		prev = h.Level
	}

	if len(rctx.Headings) == 0 && rctx.WordCount > headinglessThreshold {
		issues = append(issues, types.Issue{
			Severity:       types.SeverityMedium,
			Category:       "structure",
			RuleID:         "STR003",
			Message:        fmt.Sprintf("%d-word document has no headings", rctx.WordCount),
			Suggestion:     "break the document into titled sections",
			ParagraphIndex: -1,
		})
	}
	return issues
}
