// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// builder accumulates extracted content and assigns the stable,
// monotonic paragraph indices every downstream component addresses by.
// Headings occupy a paragraph slot too, so one index space covers the
// whole document in reading order.
type builder struct {
	paragraphs []types.Paragraph
	headings   []types.Heading
	tables     []types.Table
	figures    []types.Figure
	next       int
}

func (b *builder) paragraph(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return -1
	}
	idx := b.next
	b.next++
	b.paragraphs = append(b.paragraphs, types.Paragraph{Index: idx, Text: text})
	return idx
}

func (b *builder) heading(level int, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if level < 1 {
		level = 1
	}
	idx := b.paragraph(text)
	b.headings = append(b.headings, types.Heading{Index: idx, Level: level, Text: text})
}

func (b *builder) table(rows [][]string, caption string) {
	if len(rows) == 0 {
		return
	}
	b.tables = append(b.tables, types.Table{Index: b.next, Caption: caption, Rows: rows})
}

func (b *builder) figure(caption string, meta map[string]string) {
	b.figures = append(b.figures, types.Figure{Index: b.next, Caption: caption, Metadata: meta})
}

// captionLast attaches text as the caption of the most recent
// uncaptioned table or figure. Returns false when neither exists.
func (b *builder) captionLast(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if n := len(b.figures); n > 0 && b.figures[n-1].Caption == "" {
		b.figures[n-1].Caption = text
		return true
	}
	if n := len(b.tables); n > 0 && b.tables[n-1].Caption == "" {
		b.tables[n-1].Caption = text
		return true
	}
	return false
}

func (b *builder) empty() bool {
	return len(b.paragraphs) == 0
}

// result finalizes the accumulated content into an ExtractionResult
// with derived counts, quality metrics, and coarse confidence.
func (b *builder) result(method types.ExtractionMethod) *types.ExtractionResult {
	res := &types.ExtractionResult{
		Paragraphs: b.paragraphs,
		Headings:   b.headings,
		Tables:     b.tables,
		Figures:    b.figures,
		Method:     method,
	}
	res.Finalize()
	res.Quality = computeQuality(res)
	res.Confidence = deriveConfidence(method, res.Quality)
	return res
}
