// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review runs the registered checkers over an extracted
// document and aggregates their findings into a scored result.
package review

import (
	"fmt"
	"log/slog"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Orchestrator drives one or more review runs against a fixed registry.
type Orchestrator struct {
	registry *checker.Registry
	logger   *slog.Logger
}

// NewOrchestrator wraps a validated registry.
func NewOrchestrator(registry *checker.Registry, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{registry: registry, logger: logger}
}

// Review executes the enabled checkers sequentially, in registration
// order, and aggregates. A checker that panics is converted into a
// FailedCheckers entry and the run continues; its partial issues are
// discarded. The same document, config, and capability map always
// produce the same result.
func (o *Orchestrator) Review(doc *types.ExtractionResult, caps types.CapabilityMap, cfg types.ReviewConfig, opts map[string]string) *types.ReviewResult {
	cfg.Defaults()

	rctx := &checker.Context{
		FullText:     doc.FullText(),
		Headings:     doc.Headings,
		Tables:       doc.Tables,
		Figures:      doc.Figures,
		WordCount:    doc.WordCount,
		Capabilities: caps,
		Options:      opts,
	}

	result := &types.ReviewResult{
		Issues:         []types.Issue{},
		CategoryCounts: map[string]int{},
		SeverityCounts: map[string]int{},
		CheckersRun:    []string{},
	}

	for _, d := range o.registry.Enabled(cfg, caps) {
		issues, failure := o.runOne(d, doc.Paragraphs, rctx)
		result.CheckersRun = append(result.CheckersRun, d.Key)
		if failure != nil {
			result.FailedCheckers = append(result.FailedCheckers, *failure)
			continue
		}
		for _, is := range issues {
			if is.Severity < cfg.SeverityFloor {
				continue
			}
			is.Checker = d.Key
			if is.Category == "" {
				is.Category = d.Category
			}
			result.Issues = append(result.Issues, is)
			result.CategoryCounts[is.Category]++
			result.SeverityCounts[is.Severity.String()]++
		}
	}

	result.Score = Score(result.SeverityCounts)
	result.Grade = Grade(result.Score)
	return result
}

// runOne isolates a single checker invocation. The recovered panic
// value is logged but never propagated into the result.
func (o *Orchestrator) runOne(d checker.Descriptor, paragraphs []types.Paragraph, rctx *checker.Context) (issues []types.Issue, failure *types.CheckerFailure) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("checker panicked", "checker", d.Key, "panic", fmt.Sprint(r))
			issues = nil
			failure = &types.CheckerFailure{
				Checker: d.Key,
				Message: "checker aborted with an internal error",
			}
		}
	}()
	issues = d.New().Check(paragraphs, rctx)
	return issues, nil
}
