// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

const (
	longSentenceWords = 40
	highAverageWords  = 28
)

type readabilityChecker struct{}

func (readabilityChecker) Check(paragraphs []types.Paragraph, _ *checker.Context) []types.Issue {
	var issues []types.Issue
	totalWords, totalSentences := 0, 0

	for _, p := range paragraphs {
		for _, sentence := range splitSentences(p.Text) {
			n := len(wordTokens(sentence))
			if n == 0 {
				continue
			}
			totalWords += n
			totalSentences++
			if n > longSentenceWords {
				issues = append(issues, types.Issue{
					Severity:       types.SeverityLow,
					Category:       "readability",
					RuleID:         "RDB001",
					Message:        fmt.Sprintf("sentence runs %d words", n),
					Context:        snippet(sentence, 80),
					Suggestion:     "split into two or more sentences",
					ParagraphIndex: p.Index,
				})
			}
		}
	}

	if totalSentences > 0 {
		avg := totalWords / totalSentences
		if avg > highAverageWords {
			issues = append(issues, types.Issue{
				Severity:       types.SeverityMedium,
				Category:       "readability",
				RuleID:         "RDB002",
				Message:        fmt.Sprintf("average sentence length is %d words across %d sentences", avg, totalSentences),
				Suggestion:     "shorten sentences throughout the document",
				ParagraphIndex: -1,
			})
		}
	}
	return issues
}
