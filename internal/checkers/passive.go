// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// passivePattern matches a be-verb followed by a regular past
// participle. Irregular participles common in technical prose are
// listed explicitly.
var passivePattern = regexp.MustCompile(
	`(?i)\b(is|are|was|were|be|been|being)\s+` +
		`(\w+ed|\w+en|done|made|given|taken|shown|known|written|built|sent|found|held|kept|left|lost|met|put|read|run|set|told|understood)\b`)

// participleStoplist filters words the pattern catches that are not
// participles.
var participleStoplist = map[string]bool{
	"often":    true,
	"open":     true,
	"even":     true,
	"seven":    true,
	"eleven":   true,
	"golden":   true,
	"wooden":   true,
	"sudden":   true,
	"children": true,
	"kitchen":  true,
	"need":     true,
	"indeed":   true,
	"red":      true,
}

type passiveChecker struct{}

func (passiveChecker) Check(paragraphs []types.Paragraph, _ *checker.Context) []types.Issue {
	var issues []types.Issue
	for _, p := range paragraphs {
		for _, m := range passivePattern.FindAllStringSubmatch(p.Text, -1) {
			if participleStoplist[strings.ToLower(m[2])] {
				continue
			}
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       "grammar",
				RuleID:         "GRM001",
				Message:        fmt.Sprintf("passive construction %q", m[0]),
				Context:        snippet(p.Text, 80),
				Suggestion:     "rewrite in active voice, naming the actor",
				ParagraphIndex: p.Index,
			})
		}
	}
	return issues
}
