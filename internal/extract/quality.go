// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// computeQuality derives extraction-quality metrics from the full text.
// The numbers are diagnostic: reports surface them, nothing branches on
// them except the coarse confidence label.
func computeQuality(res *types.ExtractionResult) *types.ExtractionQuality {
	text := res.FullText()

	var charsPerParagraph float64
	if res.ParagraphCount > 0 {
		charsPerParagraph = float64(len([]rune(text))) / float64(res.ParagraphCount)
	}

	return &types.ExtractionQuality{
		PrintableRatio:    printableRatio(text),
		WordlikeRatio:     wordlikeRatio(text),
		CharsPerParagraph: charsPerParagraph,
		VisualRefCount:    countVisualRefs(text),
	}
}

// deriveConfidence maps the method and quality metrics to the coarse
// confidence label. Legacy output never rates high: the tier has no
// structural signal to corroborate its text.
func deriveConfidence(method types.ExtractionMethod, q *types.ExtractionQuality) types.Confidence {
	if q.PrintableRatio < 0.85 || q.WordlikeRatio < 0.5 {
		return types.ConfidenceLow
	}
	if method == types.MethodLegacy {
		return types.ConfidenceMedium
	}
	if q.PrintableRatio >= 0.97 && q.WordlikeRatio >= 0.75 {
		return types.ConfidenceHigh
	}
	return types.ConfidenceMedium
}

// printableRatio returns the fraction of printable runes, excluding the
// Private Use Area, the replacement character, and control characters
// other than whitespace.
func printableRatio(text string) float64 {
	if len(text) == 0 {
		return 1.0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if garbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(printable) / float64(total)
}

func garbageRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	return r < 0x20 && r != '\n' && r != '\r' && r != '\t'
}

// wordlikeRatio returns the fraction of tokens with a plausible word
// length (2-15 runes).
func wordlikeRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	wordlike := 0
	for _, f := range fields {
		n := len([]rune(f))
		if n >= 2 && n <= 15 {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(fields))
}

var visualRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(see|refer\s+to|cf\.?)\s+(figure|fig\.?|table|diagram|chart|illustration)\s*\d`),
	regexp.MustCompile(`(?i)(figure|fig\.?|table)\s+\d+`),
}

// countVisualRefs counts textual references to figures and tables.
func countVisualRefs(text string) int {
	count := 0
	for _, pat := range visualRefPatterns {
		count += len(pat.FindAllString(text, -1))
	}
	return count
}
