// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported input document type.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatPPTX Format = "pptx"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
	FormatMD   Format = "md"
	FormatTXT  Format = "txt"
)

// DetectFormat returns the document format for a file path based on its
// extension. Unknown extensions are treated as plain text so that the
// legacy extraction tier can still produce a result.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDOCX
	case ".pdf":
		return FormatPDF
	case ".pptx":
		return FormatPPTX
	case ".xlsx":
		return FormatXLSX
	case ".html", ".htm":
		return FormatHTML
	case ".md", ".markdown":
		return FormatMD
	default:
		return FormatTXT
	}
}

// ParseFormat validates a format name supplied on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDOCX, FormatPDF, FormatPPTX, FormatXLSX, FormatHTML, FormatMD, FormatTXT:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// ExtractionMethod identifies which extraction tier produced a result.
type ExtractionMethod string

const (
	// MethodStructural is the high-fidelity tier: layout-aware extraction
	// run in an isolated worker process.
	MethodStructural ExtractionMethod = "structural"

	// MethodLightweight is the in-process format-specific tier.
	MethodLightweight ExtractionMethod = "lightweight"

	// MethodLegacy is the raw-text tier that never fails.
	MethodLegacy ExtractionMethod = "legacy"
)

// Confidence is a coarse extraction-quality indicator. It is diagnostic
// only; downstream components must not branch on it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Paragraph is one unit of body text. Index is stable and monotonic
// within a document and is the location reference used by every
// downstream component.
type Paragraph struct {
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
}

// Heading is a document heading with its outline level (1-based).
type Heading struct {
	Index int    `json:"index" yaml:"index"`
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Table is a grid of cell text with an optional caption. Index is the
// paragraph index at which the table appears.
type Table struct {
	Index   int        `json:"index" yaml:"index"`
	Caption string     `json:"caption,omitempty" yaml:"caption,omitempty"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Figure records a figure or embedded image reference.
type Figure struct {
	Index    int               `json:"index" yaml:"index"`
	Caption  string            `json:"caption,omitempty" yaml:"caption,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ExtractionQuality captures metrics about extraction fidelity. The
// ratios follow the same definitions for every tier so results are
// comparable across methods.
type ExtractionQuality struct {
	// PrintableRatio is the fraction of printable runes in the full text.
	PrintableRatio float64 `json:"printable_ratio" yaml:"printable_ratio"`

	// WordlikeRatio is the fraction of whitespace-separated tokens with a
	// plausible word length (2-15 runes).
	WordlikeRatio float64 `json:"wordlike_ratio" yaml:"wordlike_ratio"`

	// CharsPerParagraph is the mean rune count per paragraph.
	CharsPerParagraph float64 `json:"chars_per_paragraph" yaml:"chars_per_paragraph"`

	// VisualRefCount counts textual references to figures and tables.
	VisualRefCount int `json:"visual_ref_count" yaml:"visual_ref_count"`
}

// ExtractionResult is the normalized intermediate representation handed
// to the review orchestrator. It is created once per extraction call and
// never mutated afterward.
type ExtractionResult struct {
	Paragraphs []Paragraph `json:"paragraphs" yaml:"paragraphs"`
	Headings   []Heading   `json:"headings,omitempty" yaml:"headings,omitempty"`
	Tables     []Table     `json:"tables,omitempty" yaml:"tables,omitempty"`
	Figures    []Figure    `json:"figures,omitempty" yaml:"figures,omitempty"`

	WordCount      int `json:"word_count" yaml:"word_count"`
	ParagraphCount int `json:"paragraph_count" yaml:"paragraph_count"`

	// Format is the input format the coordinator dispatched on. Filled by
	// the coordinator, not the individual extractors.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// Method is never empty: every result names the tier that produced it.
	Method     ExtractionMethod   `json:"extraction_method" yaml:"extraction_method"`
	Confidence Confidence         `json:"extraction_confidence" yaml:"extraction_confidence"`
	Quality    *ExtractionQuality `json:"quality,omitempty" yaml:"quality,omitempty"`
}

// FullText returns the paragraph texts joined by newlines.
func (r *ExtractionResult) FullText() string {
	var sb strings.Builder
	for i, p := range r.Paragraphs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Finalize fills the derived counters from the paragraph list.
func (r *ExtractionResult) Finalize() {
	r.ParagraphCount = len(r.Paragraphs)
	words := 0
	for _, p := range r.Paragraphs {
		words += len(strings.Fields(p.Text))
	}
	r.WordCount = words
}
