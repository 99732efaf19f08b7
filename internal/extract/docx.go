// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// openDocxPart locates word/document.xml inside the OOXML archive.
func openDocxPart(data []byte) (io.ReadCloser, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("word/document.xml not found in archive")
}

// docxLightweight extracts paragraphs and headings only: a streaming
// pass over document.xml with no table or drawing handling.
func docxLightweight(data []byte) (*types.ExtractionResult, error) {
	rc, err := openDocxPart(data)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var (
		b       builder
		dec     = xml.NewDecoder(rc)
		inPara  bool
		text    strings.Builder
		style   string
		inTable int
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable++
			case "p":
				if inTable == 0 {
					inPara = true
					text.Reset()
					style = ""
				}
			case "pStyle":
				if inPara {
					style = attrValue(t, "val")
				}
			}
		case xml.CharData:
			if inPara && inTable == 0 {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if inTable > 0 {
					inTable--
				}
			case "p":
				if inPara && inTable == 0 {
					inPara = false
					emitDocxParagraph(&b, style, text.String())
				}
			}
		}
	}

	if b.empty() {
		return nil, fmt.Errorf("docx: no text content")
	}
	return b.result(types.MethodLightweight), nil
}

// docxStructural extracts the full layout: headings, body paragraphs,
// table grids (w:tbl), and figures (w:drawing). Caption-styled
// paragraphs are attached to the nearest preceding table or figure.
func docxStructural(data []byte) (*types.ExtractionResult, error) {
	rc, err := openDocxPart(data)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var (
		b      builder
		dec    = xml.NewDecoder(rc)
		inPara bool
		text   strings.Builder
		style  string

		inTable   int
		tableRows [][]string
		row       []string
		cell      strings.Builder
		inCell    bool

		figureMeta map[string]string
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable++
				if inTable == 1 {
					tableRows = nil
				}
			case "tr":
				if inTable == 1 {
					row = nil
				}
			case "tc":
				if inTable == 1 {
					inCell = true
					cell.Reset()
				}
			case "p":
				if inTable == 0 {
					inPara = true
					text.Reset()
					style = ""
					figureMeta = nil
				}
			case "pStyle":
				if inPara {
					style = attrValue(t, "val")
				}
			case "drawing":
				if inPara {
					figureMeta = map[string]string{}
				}
			case "docPr":
				// Drawing properties carry the figure name and alt text.
				if figureMeta != nil {
					if v := attrValue(t, "name"); v != "" {
						figureMeta["name"] = v
					}
					if v := attrValue(t, "descr"); v != "" {
						figureMeta["descr"] = v
					}
				}
			}
		case xml.CharData:
			switch {
			case inCell:
				cell.Write(t)
			case inPara && inTable == 0:
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if inTable == 1 {
					b.table(tableRows, "")
				}
				if inTable > 0 {
					inTable--
				}
			case "tr":
				if inTable == 1 && len(row) > 0 {
					tableRows = append(tableRows, row)
				}
			case "tc":
				if inTable == 1 {
					inCell = false
					row = append(row, strings.TrimSpace(cell.String()))
				}
			case "p":
				if inPara && inTable == 0 {
					inPara = false
					if figureMeta != nil {
						b.figure(figureMeta["descr"], figureMeta)
						figureMeta = nil
					}
					if strings.EqualFold(style, "caption") {
						if b.captionLast(text.String()) {
							b.paragraph(text.String())
							continue
						}
					}
					emitDocxParagraph(&b, style, text.String())
				}
			}
		}
	}

	if b.empty() {
		return nil, fmt.Errorf("docx: no text content")
	}
	return b.result(types.MethodStructural), nil
}

// emitDocxParagraph routes a finished paragraph to the builder as a
// heading or body text, depending on its style.
func emitDocxParagraph(b *builder, style, raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	if level := docxHeadingLevel(style); level > 0 {
		b.heading(level, text)
	} else {
		b.paragraph(text)
	}
}

// docxHeadingLevel maps a paragraph style name to an outline level.
// "Heading1"-"Heading6" and localized variants map to 1-6; "Title" and
// "Subtitle" map to 1 and 2; anything else is body text.
func docxHeadingLevel(style string) int {
	lower := strings.ToLower(style)
	switch lower {
	case "title":
		return 1
	case "subtitle":
		return 2
	}
	for _, prefix := range []string{"heading", "titre", "überschrift"} {
		rest, ok := strings.CutPrefix(lower, prefix)
		if ok && len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
			return int(rest[0] - '0')
		}
	}
	return 0
}

// attrValue returns the value of the named attribute, ignoring namespaces.
func attrValue(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
