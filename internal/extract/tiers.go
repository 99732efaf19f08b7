// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Structural runs the high-fidelity tier in-process. Callers other than
// the worker subcommand should go through the Coordinator, which adds
// the process isolation and timeout on top of this function.
func Structural(data []byte, format types.Format) (*types.ExtractionResult, error) {
	switch format {
	case types.FormatDOCX:
		return docxStructural(data)
	case types.FormatPDF:
		return pdfStructural(data)
	case types.FormatPPTX:
		return pptxStructural(data)
	case types.FormatXLSX:
		return xlsxStructural(data)
	case types.FormatHTML:
		return htmlExtract(data, true)
	default:
		return nil, fmt.Errorf("no structural parser for format %q", format)
	}
}

// Lightweight runs the in-process format-specific tier. It trades
// table/figure fidelity for speed and for independence from the worker
// process.
func Lightweight(data []byte, format types.Format) (*types.ExtractionResult, error) {
	switch format {
	case types.FormatDOCX:
		return docxLightweight(data)
	case types.FormatPDF:
		return pdfLightweight(data)
	case types.FormatPPTX:
		return pptxLightweight(data)
	case types.FormatXLSX:
		return xlsxLightweight(data)
	case types.FormatHTML:
		return htmlExtract(data, false)
	case types.FormatMD:
		return markdownExtract(data)
	default:
		return nil, fmt.Errorf("no lightweight parser for format %q", format)
	}
}
