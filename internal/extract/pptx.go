// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// slideEntry pairs a slide part with its number for deterministic order.
type slideEntry struct {
	nr   int
	file *zip.File
}

// pptxSlides returns the slide parts sorted by slide number. Lexical
// order would put slide10 before slide2.
func pptxSlides(data []byte) ([]slideEntry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pptx archive: %w", err)
	}
	var slides []slideEntry
	for _, f := range zr.File {
		name := f.Name
		if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		nrText := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
		nr, err := strconv.Atoi(nrText)
		if err != nil {
			continue
		}
		slides = append(slides, slideEntry{nr: nr, file: f})
	}
	if len(slides) == 0 {
		return nil, fmt.Errorf("pptx: no slide parts in archive")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].nr < slides[j].nr })
	return slides, nil
}

// pptxStructural extracts slide content with layout awareness: title
// placeholder shapes become headings, drawing-ML tables (a:tbl) become
// grids, everything else is body text.
func pptxStructural(data []byte) (*types.ExtractionResult, error) {
	slides, err := pptxSlides(data)
	if err != nil {
		return nil, err
	}

	var b builder
	for _, s := range slides {
		if err := parseSlide(&b, s.file, true); err != nil {
			continue
		}
	}

	if b.empty() {
		return nil, fmt.Errorf("pptx: no text content")
	}
	return b.result(types.MethodStructural), nil
}

// pptxLightweight extracts text runs only, one paragraph per a:p.
func pptxLightweight(data []byte) (*types.ExtractionResult, error) {
	slides, err := pptxSlides(data)
	if err != nil {
		return nil, err
	}

	var b builder
	for _, s := range slides {
		if err := parseSlide(&b, s.file, false); err != nil {
			continue
		}
	}

	if b.empty() {
		return nil, fmt.Errorf("pptx: no text content")
	}
	return b.result(types.MethodLightweight), nil
}

// parseSlide walks one slide part. With structure enabled it tracks
// title placeholders and tables; otherwise every text paragraph is
// body text.
func parseSlide(b *builder, f *zip.File, structure bool) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	var (
		dec     = xml.NewDecoder(io.LimitReader(rc, 32<<20))
		inPara  bool
		text    strings.Builder
		isTitle bool

		inTable   int
		tableRows [][]string
		row       []string
		cell      strings.Builder
		inCell    bool
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sp":
				isTitle = false
			case "ph":
				if structure {
					switch attrValue(t, "type") {
					case "title", "ctrTitle":
						isTitle = true
					}
				}
			case "tbl":
				if structure {
					inTable++
					if inTable == 1 {
						tableRows = nil
					}
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
					if structure && isTitle {
						b.heading(1, text.String())
					} else {
						b.paragraph(text.String())
					}
				}
			case "sp":
				isTitle = false
			}
		}
	}
	return nil
}
