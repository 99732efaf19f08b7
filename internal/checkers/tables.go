// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

type tablesChecker struct{}

// Check enforces captioning of visual elements: every table and figure
// should carry a caption so in-text references resolve.
func (tablesChecker) Check(_ []types.Paragraph, rctx *checker.Context) []types.Issue {
	if rctx == nil {
		return nil
	}
	var issues []types.Issue
	for i, tbl := range rctx.Tables {
		if strings.TrimSpace(tbl.Caption) == "" {
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       "compliance",
				RuleID:         "TBL001",
				Message:        fmt.Sprintf("table %d has no caption", i+1),
				Suggestion:     "add a numbered caption above or below the table",
				ParagraphIndex: tbl.Index,
			})
		}
	}
	for i, fig := range rctx.Figures {
		if strings.TrimSpace(fig.Caption) == "" {
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       "compliance",
				RuleID:         "TBL002",
				Message:        fmt.Sprintf("figure %d has no caption", i+1),
				Suggestion:     "add a numbered caption beneath the figure",
				ParagraphIndex: fig.Index,
			})
		}
	}
	return issues
}
