// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// makeZip builds an in-memory OOXML-style archive.
func makeZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Introduction</w:t></w:r></w:p>
<w:p><w:r><w:t>This system was designed by the team.</w:t></w:r></w:p>
<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Value</w:t></w:r></w:p></w:tc></w:tr><w:tr><w:tc><w:p><w:r><w:t>alpha</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>1</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
<w:p><w:pPr><w:pStyle w:val="Caption"/></w:pPr><w:r><w:t>Table 1: parameters</w:t></w:r></w:p>
<w:p><w:r><w:drawing><wp:docPr id="1" name="Picture 1" descr="System diagram"/></w:drawing></w:r></w:p>
</w:body></w:document>`

func TestDocxStructural(t *testing.T) {
	data := makeZip(t, map[string]string{"word/document.xml": docxBody})

	res, err := docxStructural(data)
	if err != nil {
		t.Fatalf("docxStructural: %v", err)
	}

	if res.Method != types.MethodStructural {
		t.Errorf("method = %q", res.Method)
	}
	if len(res.Headings) != 1 || res.Headings[0].Text != "Introduction" || res.Headings[0].Level != 1 {
		t.Errorf("headings = %+v", res.Headings)
	}
	if len(res.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(res.Tables))
	}
	tbl := res.Tables[0]
	if len(tbl.Rows) != 2 || tbl.Rows[0][0] != "Name" || tbl.Rows[1][1] != "1" {
		t.Errorf("table rows = %+v", tbl.Rows)
	}
	if tbl.Caption != "Table 1: parameters" {
		t.Errorf("table caption = %q", tbl.Caption)
	}
	if len(res.Figures) != 1 || res.Figures[0].Metadata["name"] != "Picture 1" {
		t.Errorf("figures = %+v", res.Figures)
	}
}

func TestDocxLightweight(t *testing.T) {
	data := makeZip(t, map[string]string{"word/document.xml": docxBody})

	res, err := docxLightweight(data)
	if err != nil {
		t.Fatalf("docxLightweight: %v", err)
	}

	if res.Method != types.MethodLightweight {
		t.Errorf("method = %q", res.Method)
	}
	if len(res.Tables) != 0 {
		t.Errorf("lightweight tier should not emit tables, got %d", len(res.Tables))
	}
	if len(res.Headings) != 1 {
		t.Errorf("headings = %+v", res.Headings)
	}
	full := res.FullText()
	if !strings.Contains(full, "designed by the team") {
		t.Errorf("body text missing from %q", full)
	}
}

func TestDocxMissingPart(t *testing.T) {
	data := makeZip(t, map[string]string{"other.xml": "<x/>"})
	if _, err := docxLightweight(data); err == nil {
		t.Fatal("want error for archive without word/document.xml")
	}
}

const slideXML = `<?xml version="1.0"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:sp><p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr><p:txBody><a:p><a:r><a:t>Quarterly Review</a:t></a:r></a:p></p:txBody></p:sp>
<p:sp><p:txBody><a:p><a:r><a:t>Revenue grew steadily.</a:t></a:r></a:p></p:txBody></p:sp>
</p:spTree></p:cSld></p:sld>`

func TestPptxStructural(t *testing.T) {
	data := makeZip(t, map[string]string{
		"ppt/slides/slide2.xml": `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>Second slide body.</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:sld>`,
		"ppt/slides/slide1.xml": slideXML,
	})

	res, err := pptxStructural(data)
	if err != nil {
		t.Fatalf("pptxStructural: %v", err)
	}
	if len(res.Headings) != 1 || res.Headings[0].Text != "Quarterly Review" {
		t.Errorf("headings = %+v", res.Headings)
	}
	// Slide 1 content must precede slide 2 content.
	full := res.FullText()
	if strings.Index(full, "Revenue grew") > strings.Index(full, "Second slide") {
		t.Errorf("slides out of order: %q", full)
	}
}

func TestPptxLightweightNoHeadings(t *testing.T) {
	data := makeZip(t, map[string]string{"ppt/slides/slide1.xml": slideXML})

	res, err := pptxLightweight(data)
	if err != nil {
		t.Fatalf("pptxLightweight: %v", err)
	}
	if len(res.Headings) != 0 {
		t.Errorf("lightweight tier should not emit headings, got %+v", res.Headings)
	}
	if !strings.Contains(res.FullText(), "Quarterly Review") {
		t.Errorf("title text missing from body")
	}
}

const sharedStringsXML = `<?xml version="1.0"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><si><t>Region</t></si><si><t>Total</t></si><si><t>North</t></si></sst>`

const sheetXML = `<?xml version="1.0"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>
<row r="2"><c r="A2" t="s"><v>2</v></c><c r="B2"><v>42</v></c></row>
</sheetData></worksheet>`

func TestXlsxStructural(t *testing.T) {
	data := makeZip(t, map[string]string{
		"xl/sharedStrings.xml":      sharedStringsXML,
		"xl/worksheets/sheet1.xml":  sheetXML,
	})

	res, err := xlsxStructural(data)
	if err != nil {
		t.Fatalf("xlsxStructural: %v", err)
	}
	if len(res.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(res.Tables))
	}
	rows := res.Tables[0].Rows
	if len(rows) != 2 || rows[0][0] != "Region" || rows[1][1] != "42" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestXlsxLightweight(t *testing.T) {
	data := makeZip(t, map[string]string{
		"xl/sharedStrings.xml":     sharedStringsXML,
		"xl/worksheets/sheet1.xml": sheetXML,
	})

	res, err := xlsxLightweight(data)
	if err != nil {
		t.Fatalf("xlsxLightweight: %v", err)
	}
	if len(res.Tables) != 0 {
		t.Errorf("lightweight tier should not emit tables")
	}
	if len(res.Paragraphs) != 3 {
		t.Errorf("got %d paragraphs, want one per shared string", len(res.Paragraphs))
	}
}

const htmlDoc = `<!DOCTYPE html><html><head><title>Spec</title><style>p{color:red}</style></head><body>
<h1>Overview</h1>
<p>The pipeline processes documents.</p>
<table><caption>Limits</caption><tr><th>Name</th><th>Max</th></tr><tr><td>file</td><td>50</td></tr></table>
<figure><img src="x.png" alt=""/><figcaption>Figure 1: flow</figcaption></figure>
<script>ignore()</script>
</body></html>`

func TestHTMLStructural(t *testing.T) {
	res, err := htmlExtract([]byte(htmlDoc), true)
	if err != nil {
		t.Fatalf("htmlExtract: %v", err)
	}
	if len(res.Headings) != 1 || res.Headings[0].Level != 1 {
		t.Errorf("headings = %+v", res.Headings)
	}
	if len(res.Tables) != 1 || res.Tables[0].Caption != "Limits" {
		t.Fatalf("tables = %+v", res.Tables)
	}
	if res.Tables[0].Rows[1][0] != "file" {
		t.Errorf("rows = %+v", res.Tables[0].Rows)
	}
	if len(res.Figures) != 1 || res.Figures[0].Caption != "Figure 1: flow" {
		t.Errorf("figures = %+v", res.Figures)
	}
	if strings.Contains(res.FullText(), "ignore()") {
		t.Errorf("script content leaked into text")
	}
}

func TestHTMLLightweight(t *testing.T) {
	res, err := htmlExtract([]byte(htmlDoc), false)
	if err != nil {
		t.Fatalf("htmlExtract: %v", err)
	}
	if len(res.Tables) != 0 || len(res.Figures) != 0 {
		t.Errorf("lightweight tier should not emit tables or figures")
	}
	if len(res.Headings) != 1 {
		t.Errorf("headings = %+v", res.Headings)
	}
}

func TestMarkdownExtract(t *testing.T) {
	md := "# Title\n\nFirst paragraph\ncontinues here.\n\n## Section\n\nSecond paragraph."
	res, err := markdownExtract([]byte(md))
	if err != nil {
		t.Fatalf("markdownExtract: %v", err)
	}
	if len(res.Headings) != 2 || res.Headings[1].Level != 2 {
		t.Errorf("headings = %+v", res.Headings)
	}
	if len(res.Paragraphs) != 4 {
		t.Errorf("got %d paragraphs, want 4 (2 headings + 2 bodies)", len(res.Paragraphs))
	}
	if res.Paragraphs[1].Text != "First paragraph continues here." {
		t.Errorf("paragraph = %q", res.Paragraphs[1].Text)
	}
}

// miniPDF is a minimal uncompressed PDF-like byte stream with text
// operators, enough for the direct content-stream reader.
const miniPDF = `%PDF-1.4
1 0 obj
<< /Length 60 >>
stream
BT
/F1 12 Tf
(Hello content stream) Tj
(second line) Tj
ET
endstream
endobj
%%EOF`

func TestPDFLightweight(t *testing.T) {
	res, err := pdfLightweight([]byte(miniPDF))
	if err != nil {
		t.Fatalf("pdfLightweight: %v", err)
	}
	full := res.FullText()
	if !strings.Contains(full, "Hello content stream") {
		t.Errorf("text missing: %q", full)
	}
}

func TestPDFLightweightRejectsNonPDF(t *testing.T) {
	if _, err := pdfLightweight([]byte("not a pdf")); err == nil {
		t.Fatal("want error for non-PDF input")
	}
}

func TestUnescapePDFString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\(b\)c`, "a(b)c"},
		{`tab\there`, "tab\there"},
		{`oct\101l`, "octAl"},
		{`back\\slash`, `back\slash`},
	}
	for _, tt := range tests {
		if got := unescapePDFString([]byte(tt.in)); got != tt.want {
			t.Errorf("unescapePDFString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQualityMetrics(t *testing.T) {
	res := Legacy([]byte("This is a normal paragraph with regular words.\n\nSee Figure 2 for details."))
	q := res.Quality
	if q == nil {
		t.Fatal("quality not computed")
	}
	if q.PrintableRatio < 0.99 {
		t.Errorf("printable ratio = %f", q.PrintableRatio)
	}
	if q.WordlikeRatio < 0.8 {
		t.Errorf("wordlike ratio = %f", q.WordlikeRatio)
	}
	if q.VisualRefCount == 0 {
		t.Errorf("visual reference not counted")
	}
	if res.Confidence != types.ConfidenceMedium {
		t.Errorf("legacy confidence = %q, want medium", res.Confidence)
	}
}

func TestWorkerRoundTrip(t *testing.T) {
	data := makeZip(t, map[string]string{"word/document.xml": docxBody})

	var out bytes.Buffer
	if err := RunWorker("docx", bytes.NewReader(data), &out); err != nil {
		t.Fatalf("RunWorker: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"extraction_method":"structural"`)) {
		t.Errorf("worker output missing method: %s", out.Bytes())
	}
}

func TestWorkerUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	if err := RunWorker("wad", strings.NewReader(""), &out); err == nil {
		t.Fatal("want error for unknown format")
	}
}
