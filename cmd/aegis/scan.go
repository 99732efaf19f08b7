// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/capability"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checkers"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/extract"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/fetch"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/history"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/profile"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/review"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [files or URLs...]",
	Short: "Extract and review documents, producing a scored report",
	Long: `Scan runs the full pipeline over one or more documents: extraction
with graceful degradation, capability probing (once per invocation),
then every enabled checker in a fixed order. Output is a per-document
report with issues, severity tallies, and a 0-100 score.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("profile", "full", "review profile (see 'aegis checkers' for the checker list)")
	scanCmd.Flags().String("profiles-file", "profiles.yaml", "YAML file with additional profiles")
	scanCmd.Flags().StringSlice("checkers", nil, "explicit checker keys, overriding the profile")
	scanCmd.Flags().String("severity-floor", "", "drop issues below this severity (info, low, medium, high, critical)")
	scanCmd.Flags().String("output", "text", "report format: text, json, or yaml")
	scanCmd.Flags().Duration("timeout", 0, "wall-clock limit for the high-fidelity extraction worker (default 120s)")
	scanCmd.Flags().Bool("record", false, "record scan outcomes in the history database")
	scanCmd.Flags().String("history-db", "", "history database path (default aegis-history.db)")
	scanCmd.Flags().StringToString("option", nil, "checker options as key=value pairs")

	rootCmd.AddCommand(scanCmd)
}

// scanReport is the serialized per-document report.
type scanReport struct {
	Path       string                 `json:"path" yaml:"path"`
	Format     types.Format           `json:"format" yaml:"format"`
	Method     types.ExtractionMethod `json:"extraction_method" yaml:"extraction_method"`
	Confidence types.Confidence       `json:"extraction_confidence" yaml:"extraction_confidence"`
	WordCount  int                    `json:"word_count" yaml:"word_count"`
	Error      string                 `json:"error,omitempty" yaml:"error,omitempty"`
	Review     *types.ReviewResult    `json:"review,omitempty" yaml:"review,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more document paths or URLs")
	}

	logger := newLogger(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Resolve the review configuration.
	profilesFile, _ := cmd.Flags().GetString("profiles-file")
	profiles, err := profile.Load(profilesFile)
	if err != nil {
		return err
	}
	profileName, _ := cmd.Flags().GetString("profile")
	cfg, err := profiles.Resolve(profileName)
	if err != nil {
		return err
	}
	if explicit, _ := cmd.Flags().GetStringSlice("checkers"); len(explicit) > 0 {
		cfg.EnabledCheckers = explicit
	}
	if floorName, _ := cmd.Flags().GetString("severity-floor"); floorName != "" {
		floor, err := types.ParseSeverity(floorName)
		if err != nil {
			return err
		}
		cfg.SeverityFloor = floor
	}
	cfg.Logger = logger

	// Probe optional dependencies exactly once per invocation.
	caps := capability.Probe(ctx, types.ProbeConfig{DataDir: dataDir(cmd), Logger: logger})

	registry, err := checker.NewRegistry(checkers.Descriptors(), capability.Known())
	if err != nil {
		return err
	}
	orchestrator := review.NewOrchestrator(registry, logger)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	coordinator := extract.NewCoordinator(types.ExtractionConfig{
		StructuralTimeout: timeout,
		Logger:            logger,
	})

	client := &http.Client{}
	items := make([]extract.BatchItem, 0, len(args))
	for _, arg := range args {
		var (
			data   []byte
			format types.Format
		)
		if fetch.IsURL(arg) {
			data, format, err = fetch.Document(ctx, client, arg, fetch.Config{})
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
		items = append(items, extract.BatchItem{Name: arg, Data: data, Format: format})
	}

	extractions, err := coordinator.ExtractBatch(ctx, items)
	if err != nil {
		return err
	}

	var store *history.Store
	if record, _ := cmd.Flags().GetBool("record"); record {
		dbPath, _ := cmd.Flags().GetString("history-db")
		store, err = history.NewStore(types.HistoryConfig{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer store.Close()
	}

	opts, _ := cmd.Flags().GetStringToString("option")

	reports := make([]scanReport, 0, len(extractions))
	failed := 0
	for _, ex := range extractions {
		rep := scanReport{Path: ex.Name}
		if ex.Err != nil {
			rep.Error = ex.Err.Error()
			failed++
			reports = append(reports, rep)
			continue
		}
		doc := ex.Result
		rep.Format = doc.Format
		rep.Method = doc.Method
		rep.Confidence = doc.Confidence
		rep.WordCount = doc.WordCount
		rep.Review = orchestrator.Review(doc, caps, cfg, opts)

		if store != nil {
			if err := store.Record(ctx, ex.Name, doc, rep.Review); err != nil {
				logger.Warn("recording scan failed", "path", ex.Name, "error", err)
			}
		}
		reports = append(reports, rep)
	}

	output, _ := cmd.Flags().GetString("output")
	if err := writeReports(reports, output); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d document(s) failed scanning", failed)
	}
	return nil
}

func writeReports(reports []scanReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(reports)
	case "text", "":
		for _, rep := range reports {
			printTextReport(rep)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q: use text, json, or yaml", format)
	}
}

func printTextReport(rep scanReport) {
	fmt.Printf("%s\n%s\n", rep.Path, strings.Repeat("-", len(rep.Path)))
	if rep.Error != "" {
		fmt.Printf("  error: %s\n\n", rep.Error)
		return
	}
	fmt.Printf("  format %s  method %s  confidence %s  words %d\n",
		rep.Format, rep.Method, rep.Confidence, rep.WordCount)

	r := rep.Review
	fmt.Printf("  score %d (%s), %d issue(s)\n", r.Score, r.Grade, len(r.Issues))
	for _, f := range r.FailedCheckers {
		fmt.Printf("  checker %s failed: %s\n", f.Checker, f.Message)
	}
	for _, is := range r.Issues {
		loc := "document"
		if is.ParagraphIndex >= 0 {
			loc = fmt.Sprintf("paragraph %d", is.ParagraphIndex)
		}
		fmt.Printf("  [%-8s] %s %s (%s)\n", is.Severity, is.RuleID, is.Message, loc)
		if is.Suggestion != "" {
			fmt.Printf("             suggestion: %s\n", is.Suggestion)
		}
	}
	fmt.Println()
}
