// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checkers

import (
	"fmt"
	"regexp"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

var (
	acronymToken = regexp.MustCompile(`\b([A-Z][A-Z0-9]{1,5})s?\b`)

	// A definition is the acronym in parentheses after its expansion, or
	// the acronym immediately followed by a parenthesized expansion.
	acronymDefined = regexp.MustCompile(`\(([A-Z][A-Z0-9]{1,5})\)|\b([A-Z][A-Z0-9]{1,5})\s+\(`)
)

// acronymWhitelist holds acronyms so common that an expansion would be
// noise. Collaborators extend it via the "acronym.allow" option.
var acronymWhitelist = map[string]bool{
	"OK": true, "ID": true, "USA": true, "UK": true, "EU": true,
	"API": true, "URL": true, "URI": true, "HTTP": true, "HTTPS": true,
	"HTML": true, "XML": true, "JSON": true, "YAML": true, "PDF": true,
	"CSV": true, "SQL": true, "CPU": true, "GPU": true, "RAM": true,
	"IO": true, "OS": true, "UI": true, "FAQ": true, "CEO": true,
	"AM": true, "PM": true, "GMT": true, "UTC": true,
}

type acronymChecker struct{}

// Check flags an acronym whose first use precedes any parenthesized
// definition, or that is never defined at all. One issue per acronym,
// anchored at its first use.
func (acronymChecker) Check(paragraphs []types.Paragraph, rctx *checker.Context) []types.Issue {
	allow := make(map[string]bool, len(acronymWhitelist))
	for k := range acronymWhitelist {
		allow[k] = true
	}
	if rctx != nil {
		for _, extra := range wordTokens(rctx.Options["acronym.allow"]) {
			allow[extra] = true
		}
	}

	type sighting struct {
		paragraph int
		context   string
	}
	firstUse := make(map[string]sighting)
	defined := make(map[string]bool)
	var order []string

	for _, p := range paragraphs {
		for _, m := range acronymDefined.FindAllStringSubmatch(p.Text, -1) {
			name := m[1]
			if name == "" {
				name = m[2]
			}
			// A definition only clears uses that come after it.
			if _, used := firstUse[name]; !used {
				defined[name] = true
			}
		}
		for _, m := range acronymToken.FindAllStringSubmatch(p.Text, -1) {
			name := m[1]
			if allow[name] || defined[name] {
				continue
			}
			if _, seen := firstUse[name]; !seen {
				firstUse[name] = sighting{paragraph: p.Index, context: snippet(p.Text, 80)}
				order = append(order, name)
			}
		}
	}

	var issues []types.Issue
	for _, name := range order {
		use := firstUse[name]
		issues = append(issues, types.Issue{
			Severity:       types.SeverityMedium,
			Category:       "acronym",
			RuleID:         "ACR001",
			Message:        fmt.Sprintf("acronym %s used before definition", name),
			Context:        use.context,
			Suggestion:     fmt.Sprintf("expand %s at first use", name),
			ParagraphIndex: use.paragraph,
		})
	}
	return issues
}
