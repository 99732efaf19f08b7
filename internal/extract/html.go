// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// htmlExtract parses an HTML document. With structure enabled it
// captures table grids and figure captions; otherwise only headings
// and text blocks, which is the lightweight tier's fidelity.
func htmlExtract(data []byte, structure bool) (*types.ExtractionResult, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var b builder
	walkHTML(doc, &b, structure)

	if b.empty() {
		// Fallback: all visible text as one paragraph.
		if text := htmlText(doc); text != "" {
			b.paragraph(text)
		}
	}
	if b.empty() {
		return nil, fmt.Errorf("html: no text content")
	}

	method := types.MethodLightweight
	if structure {
		method = types.MethodStructural
	}
	return b.result(method), nil
}

// walkHTML visits content nodes in document order, skipping boilerplate
// and invisible elements.
func walkHTML(n *html.Node, b *builder, structure bool) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Nav, atom.Footer, atom.Header:
			return
		}

		switch n.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			if text := htmlText(n); text != "" {
				b.heading(int(n.Data[1]-'0'), text)
			}
			return

		case atom.P, atom.Li, atom.Blockquote, atom.Pre, atom.Dd, atom.Dt:
			if text := htmlText(n); text != "" {
				b.paragraph(text)
			}
			return

		case atom.Table:
			if structure {
				rows, caption := htmlTable(n)
				b.table(rows, caption)
				var cells []string
				for _, r := range rows {
					cells = append(cells, strings.Join(r, " "))
				}
				b.paragraph(strings.Join(cells, " "))
			} else if text := htmlText(n); text != "" {
				b.paragraph(text)
			}
			return

		case atom.Figure:
			if structure {
				caption := ""
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.DataAtom == atom.Figcaption {
						caption = htmlText(c)
					}
				}
				b.figure(caption, nil)
				if caption != "" {
					b.paragraph(caption)
				}
				return
			}

		case atom.Img:
			if structure {
				meta := map[string]string{}
				var alt string
				for _, a := range n.Attr {
					switch a.Key {
					case "alt":
						alt = a.Val
					case "src":
						meta["src"] = a.Val
					}
				}
				b.figure(alt, meta)
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, b, structure)
	}
}

// htmlTable collects the cell grid and caption of a table element.
func htmlTable(n *html.Node) (rows [][]string, caption string) {
	var walk func(*html.Node)
	var row []string
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Caption:
				caption = htmlText(n)
				return
			case atom.Tr:
				row = nil
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				if len(row) > 0 {
					rows = append(rows, row)
				}
				return
			case atom.Td, atom.Th:
				row = append(row, htmlText(n))
				return
			case atom.Table:
				if row != nil {
					// Nested table: flatten into the containing cell.
					row[len(row)-1] += " " + htmlText(n)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return rows, caption
}

// htmlText extracts visible text from a subtree, space-joined.
func htmlText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
