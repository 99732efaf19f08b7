// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Legacy is the terminal extraction tier. Its contract: it never fails,
// for any byte sequence. True garbage input yields a single best-effort
// paragraph, possibly empty.
func Legacy(data []byte) *types.ExtractionResult {
	text := decodeBytes(data)
	text = scrubControl(text)

	var b builder
	for _, para := range splitBlankLines(text) {
		b.paragraph(para)
	}
	if b.empty() {
		// Guarantee at least one addressable paragraph.
		b.paragraphs = append(b.paragraphs, types.Paragraph{Index: 0, Text: ""})
		b.next = 1
	}
	return b.result(types.MethodLegacy)
}

// decodeBytes decodes input as UTF-8 when valid, then UTF-16 when a BOM
// is present, and falls back to Windows-1252, under which every byte
// sequence decodes to something.
func decodeBytes(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	if len(data) >= 2 {
		bom := [2]byte{data[0], data[1]}
		if bom == [2]byte{0xFF, 0xFE} || bom == [2]byte{0xFE, 0xFF} {
			dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
			if out, err := dec.Bytes(data); err == nil && utf8.Valid(out) {
				return string(out)
			}
		}
	}

	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		// Last resort: lossy rune-by-rune conversion.
		return strings.ToValidUTF8(string(data), "")
	}
	return string(out)
}

// scrubControl drops control characters except newline and tab.
func scrubControl(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' {
			sb.WriteRune(r)
			continue
		}
		if r < 0x20 || r == 0xFFFD || (r >= 0xE000 && r <= 0xF8FF) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// splitBlankLines splits text into paragraphs on blank lines, falling
// back to one paragraph per line block when no blank lines exist.
func splitBlankLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		out = append(out, strings.Join(strings.Fields(block), " "))
	}
	return out
}
