// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// markdownExtract splits Markdown into headings and paragraphs. ATX
// headings (#..######) set the outline level; blank lines delimit
// paragraphs. No table or figure handling: markdown goes through the
// lightweight tier only.
func markdownExtract(data []byte) (*types.ExtractionResult, error) {
	var (
		b       builder
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			b.paragraph(current.String())
			current.Reset()
		}
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			flush()
			level := 0
			for _, ch := range trimmed {
				if ch != '#' {
					break
				}
				level++
			}
			if level > 6 {
				level = 6
			}
			text := strings.TrimSpace(strings.Trim(trimmed, "#"))
			if text != "" {
				b.heading(level, text)
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(trimmed)
	}
	flush()

	if b.empty() {
		return nil, fmt.Errorf("markdown: no text content")
	}
	return b.result(types.MethodLightweight), nil
}
