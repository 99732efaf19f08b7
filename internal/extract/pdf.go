// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// pdfStructural parses the PDF with pdfcpu: validated cross-reference
// table, per-page content streams, image XObject detection. Each page
// contributes its text split into paragraphs; image objects become
// figure entries.
func pdfStructural(data []byte) (*types.ExtractionResult, error) {
	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	var b builder
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		pageText := pdfPageText(pctx, pageNr)
		for _, para := range splitPDFParagraphs(pageText) {
			b.paragraph(para)
		}
		for range pdfcpu.ImageObjNrs(pctx, pageNr) {
			b.figure("", map[string]string{"page": strconv.Itoa(pageNr)})
		}
	}
	if len(b.figures) == 0 && pdfImageStreams(pctx) {
		// Optimizer data missed them; the xref table still shows images.
		b.figure("", map[string]string{"source": "xref"})
	}

	if b.empty() {
		return nil, fmt.Errorf("pdf: no text content")
	}
	return b.result(types.MethodStructural), nil
}

// pdfPageText extracts the text of a single page from its content stream.
func pdfPageText(pctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
	if err != nil {
		return ""
	}
	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return ""
	}
	return scanContentStream(raw)
}

// pdfImageStreams reports whether the validated PDF contains image
// XObjects, consulting the optimizer data first and the xref table as
// a fallback.
func pdfImageStreams(pctx *model.Context) bool {
	if pctx.Optimize != nil {
		for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(pctx, pageNr)) > 0 {
				return true
			}
		}
	}
	for _, entry := range pctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(pdftypes.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(pdftypes.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}

// pdfLightweight is a direct content-stream reader: no cross-reference
// validation, just a scan over every stream object in the file, with
// zlib inflation for FlateDecode streams. Much faster than the
// structural tier and tolerant of mildly corrupt files, but blind to
// page boundaries and layout.
func pdfLightweight(data []byte) (*types.ExtractionResult, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("pdf: missing header")
	}

	var text strings.Builder
	for _, stream := range rawPDFStreams(data) {
		body := stream
		if inflated, err := inflateStream(stream); err == nil {
			body = inflated
		}
		if t := scanContentStream(body); t != "" {
			if text.Len() > 0 {
				text.WriteString("\n\n")
			}
			text.WriteString(t)
		}
	}

	var b builder
	for _, para := range splitPDFParagraphs(text.String()) {
		b.paragraph(para)
	}
	if b.empty() {
		return nil, fmt.Errorf("pdf: no text in content streams")
	}
	return b.result(types.MethodLightweight), nil
}

var (
	streamStart = []byte("stream")
	streamEnd   = []byte("endstream")
)

// rawPDFStreams returns the byte ranges between stream/endstream
// keywords, without consulting the cross-reference table.
func rawPDFStreams(data []byte) [][]byte {
	var streams [][]byte
	rest := data
	for {
		i := bytes.Index(rest, streamStart)
		if i < 0 {
			break
		}
		rest = rest[i+len(streamStart):]
		// Keyword is followed by CRLF or LF before the stream body.
		rest = bytes.TrimPrefix(rest, []byte("\r"))
		rest = bytes.TrimPrefix(rest, []byte("\n"))
		j := bytes.Index(rest, streamEnd)
		if j < 0 {
			break
		}
		streams = append(streams, rest[:j])
		rest = rest[j+len(streamEnd):]
	}
	return streams
}

// inflateStream attempts zlib decompression (FlateDecode).
func inflateStream(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// scanContentStream parses PDF text-showing operators (Tj, TJ, ') out
// of a content stream and joins them with positioning-aware spacing.
func scanContentStream(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, lit := range pdfStringLiterals(line) {
				sb.WriteString(lit)
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, lit := range pdfStringLiterals(line) {
				sb.WriteByte('\n')
				sb.WriteString(lit)
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}
	return tidyPDFText(sb.String())
}

// pdfStringLiterals extracts and unescapes every (...) literal on a line.
func pdfStringLiterals(line []byte) []string {
	var out []string
	for {
		open := bytes.IndexByte(line, '(')
		if open < 0 {
			break
		}
		line = line[open+1:]
		end := -1
		for i := 0; i < len(line); i++ {
			if line[i] == '\\' {
				i++
				continue
			}
			if line[i] == ')' {
				end = i
				break
			}
		}
		if end < 0 {
			break
		}
		if s := unescapePDFString(line[:end]); s != "" {
			out = append(out, s)
		}
		line = line[end+1:]
	}
	return out
}

// unescapePDFString handles backslash escapes, including octal codes.
func unescapePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// tidyPDFText collapses whitespace runs and drops unprintable runes.
func tidyPDFText(text string) string {
	var sb strings.Builder
	prevSpace := false
	prevNewline := false
	for _, r := range text {
		switch {
		case r == '\n':
			if !prevNewline && sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			prevNewline = true
			prevSpace = true
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			prevSpace = true
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
			prevNewline = false
		}
	}
	return strings.TrimSpace(sb.String())
}

// splitPDFParagraphs splits extracted page text on blank lines.
func splitPDFParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, part := range strings.Split(text, "\n") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
