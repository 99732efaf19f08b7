// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/extract"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/fetch"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file or URL]",
	Short: "Extract text and structure from a document",
	Long: `Extract runs the extraction pipeline over a single document and
prints the normalized result as JSON: paragraphs, headings, tables,
figures, and quality metrics. Extraction always succeeds; the
extraction_method field names the pass that produced the output.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("format", "", "override format detection (docx, pdf, pptx, xlsx, html, md, txt)")
	extractCmd.Flags().Duration("timeout", 0, "wall-clock limit for the high-fidelity worker (default 120s)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data   []byte
		format types.Format
		err    error
	)
	if arg := args[0]; fetch.IsURL(arg) {
		data, format, err = fetch.Document(ctx, &http.Client{}, arg, fetch.Config{})
		if err != nil {
			return err
		}
	} else {
		data, err = os.ReadFile(arg)
		if err != nil {
			return fmt.Errorf("reading %s: %w", arg, err)
		}
		format = types.DetectFormat(arg)
	}

	if name, _ := cmd.Flags().GetString("format"); name != "" {
		format, err = types.ParseFormat(name)
		if err != nil {
			return err
		}
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	coordinator := extract.NewCoordinator(types.ExtractionConfig{
		StructuralTimeout: timeout,
		Logger:            newLogger(cmd),
	})
	res, err := coordinator.Extract(ctx, data, format)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
