// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// misspellings maps frequent errors to their corrections. The table is
// bundled so results do not depend on the host dictionary; the runtime
// spell engine only gates whether the checker runs at all.
var misspellings = map[string]string{
	"teh":          "the",
	"recieve":      "receive",
	"seperate":     "separate",
	"occured":      "occurred",
	"occurence":    "occurrence",
	"definately":   "definitely",
	"accomodate":   "accommodate",
	"untill":       "until",
	"wich":         "which",
	"acheive":      "achieve",
	"existance":    "existence",
	"neccessary":   "necessary",
	"publically":   "publicly",
	"independant":  "independent",
	"enviroment":   "environment",
	"goverment":    "government",
	"arguement":    "argument",
	"maintainance": "maintenance",
	"liason":       "liaison",
	"concensus":    "consensus",
}

type spellingChecker struct{}

func (spellingChecker) Check(paragraphs []types.Paragraph, _ *checker.Context) []types.Issue {
	var issues []types.Issue
	for _, p := range paragraphs {
		for _, tok := range wordTokens(p.Text) {
			fix, ok := misspellings[strings.ToLower(tok)]
			if !ok {
				continue
			}
			issues = append(issues, types.Issue{
				Severity:       types.SeverityLow,
				Category:       "spelling",
				RuleID:         "SPL001",
				Message:        fmt.Sprintf("%q is misspelled", tok),
				Context:        snippet(p.Text, 80),
				Suggestion:     fmt.Sprintf("replace with %q", fix),
				ParagraphIndex: p.Index,
			})
		}
	}
	return issues
}
