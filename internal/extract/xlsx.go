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

// xlsxArchive holds the parts needed for extraction.
type xlsxArchive struct {
	shared []string
	sheets []sheetEntry
}

type sheetEntry struct {
	nr   int
	file *zip.File
}

func openXlsx(data []byte) (*xlsxArchive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open xlsx archive: %w", err)
	}

	arch := &xlsxArchive{}
	for _, f := range zr.File {
		switch {
		case f.Name == "xl/sharedStrings.xml":
			arch.shared, err = parseSharedStrings(f)
			if err != nil {
				return nil, err
			}
		case strings.HasPrefix(f.Name, "xl/worksheets/sheet") && strings.HasSuffix(f.Name, ".xml"):
			nrText := strings.TrimSuffix(strings.TrimPrefix(f.Name, "xl/worksheets/sheet"), ".xml")
			nr, convErr := strconv.Atoi(nrText)
			if convErr != nil {
				continue
			}
			arch.sheets = append(arch.sheets, sheetEntry{nr: nr, file: f})
		}
	}
	if len(arch.sheets) == 0 {
		return nil, fmt.Errorf("xlsx: no worksheet parts in archive")
	}
	sort.Slice(arch.sheets, func(i, j int) bool { return arch.sheets[i].nr < arch.sheets[j].nr })
	return arch, nil
}

// parseSharedStrings reads the shared string table: one entry per si,
// concatenating its text runs.
func parseSharedStrings(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var (
		dec     = xml.NewDecoder(io.LimitReader(rc, 64<<20))
		strs    []string
		current strings.Builder
		inSI    bool
		inText  bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				inSI = true
				current.Reset()
			case "t":
				inText = true
			}
		case xml.CharData:
			if inSI && inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "si":
				inSI = false
				strs = append(strs, current.String())
			}
		}
	}
	return strs, nil
}

// parseSheet returns the cell grid of one worksheet. Shared-string
// cells (t="s") are resolved through the shared table; inline and
// numeric cells use their raw value.
func parseSheet(f *zip.File, shared []string) [][]string {
	rc, err := f.Open()
	if err != nil {
		return nil
	}
	defer rc.Close()

	var (
		dec      = xml.NewDecoder(io.LimitReader(rc, 64<<20))
		rows     [][]string
		row      []string
		cellType string
		value    strings.Builder
		inValue  bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "row":
				row = nil
			case "c":
				cellType = attrValue(t, "t")
			case "v", "t":
				inValue = true
				value.Reset()
			}
		case xml.CharData:
			if inValue {
				value.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "v", "t":
				inValue = false
			case "c":
				row = append(row, resolveCell(cellType, value.String(), shared))
				value.Reset()
			case "row":
				if len(row) > 0 {
					rows = append(rows, row)
				}
			}
		}
	}
	return rows
}

func resolveCell(cellType, raw string, shared []string) string {
	raw = strings.TrimSpace(raw)
	if cellType == "s" {
		idx, err := strconv.Atoi(raw)
		if err == nil && idx >= 0 && idx < len(shared) {
			return strings.TrimSpace(shared[idx])
		}
		return ""
	}
	return raw
}

// xlsxStructural emits one heading and one table grid per worksheet,
// plus a flattened text paragraph so text checkers see the content.
func xlsxStructural(data []byte) (*types.ExtractionResult, error) {
	arch, err := openXlsx(data)
	if err != nil {
		return nil, err
	}

	var b builder
	for _, s := range arch.sheets {
		rows := parseSheet(s.file, arch.shared)
		if len(rows) == 0 {
			continue
		}
		b.heading(1, fmt.Sprintf("Sheet %d", s.nr))
		b.table(rows, "")
		var cells []string
		for _, r := range rows {
			for _, c := range r {
				if c != "" {
					cells = append(cells, c)
				}
			}
		}
		b.paragraph(strings.Join(cells, " "))
	}

	if b.empty() {
		return nil, fmt.Errorf("xlsx: no cell content")
	}
	return b.result(types.MethodStructural), nil
}

// xlsxLightweight extracts the shared string table only: cheap, and
// enough for text analysis, but with no grid structure.
func xlsxLightweight(data []byte) (*types.ExtractionResult, error) {
	arch, err := openXlsx(data)
	if err != nil {
		return nil, err
	}

	var b builder
	for _, s := range arch.shared {
		b.paragraph(s)
	}
	if b.empty() {
		return nil, fmt.Errorf("xlsx: no shared strings")
	}
	return b.result(types.MethodLightweight), nil
}
