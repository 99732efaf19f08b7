// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw document bytes into a normalized
// ExtractionResult through a three-tier fallback chain:
//
//   - structural: layout-aware extraction (headings, table grids,
//     figures) run in an isolated worker process under a hard timeout
//   - lightweight: in-process format-specific parsing, lower fidelity
//     on tables and headings
//   - legacy: best-effort text decoding that cannot fail
//
// The coordinator only ever refuses work for oversized input; for any
// accepted byte sequence it returns a result, falling down the chain
// until the legacy tier succeeds.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/isolate"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// ErrOversizedInput is the only error the coordinator surfaces: the
// input exceeded a configured ceiling and no extractor was run.
var ErrOversizedInput = errors.New("extract: input exceeds size ceiling")

// tierFunc runs one extraction tier over raw bytes.
type tierFunc func(ctx context.Context, data []byte, format types.Format) (*types.ExtractionResult, error)

// Coordinator drives the tier fallback chain.
type Coordinator struct {
	cfg    types.ExtractionConfig
	logger *slog.Logger

	// Tier entry points, replaceable in tests.
	structural  tierFunc
	lightweight tierFunc
}

// NewCoordinator creates a Coordinator with the given configuration.
func NewCoordinator(cfg types.ExtractionConfig) *Coordinator {
	cfg.Defaults()
	c := &Coordinator{
		cfg:    cfg,
		logger: cfg.Logger,
	}
	c.structural = c.workerStructural
	c.lightweight = func(_ context.Context, data []byte, format types.Format) (*types.ExtractionResult, error) {
		return Lightweight(data, format)
	}
	return c
}

// structuralFormats are the formats the high-fidelity worker handles.
var structuralFormats = map[types.Format]bool{
	types.FormatDOCX: true,
	types.FormatPDF:  true,
	types.FormatPPTX: true,
	types.FormatXLSX: true,
	types.FormatHTML: true,
}

// lightweightFormats adds markdown, which has no structural tier.
var lightweightFormats = map[types.Format]bool{
	types.FormatDOCX: true,
	types.FormatPDF:  true,
	types.FormatPPTX: true,
	types.FormatXLSX: true,
	types.FormatHTML: true,
	types.FormatMD:   true,
}

// Extract runs the fallback chain over data. It returns an error only
// for oversized input; every other failure falls through to the next
// tier, ending at the legacy tier which always succeeds.
func (c *Coordinator) Extract(ctx context.Context, data []byte, format types.Format) (*types.ExtractionResult, error) {
	size := int64(len(data))
	if size > c.cfg.MaxFileBytes {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrOversizedInput, size, c.cfg.MaxFileBytes)
	}

	if structuralFormats[format] {
		if size <= c.cfg.StructuralSkipBytes {
			res, err := c.structural(ctx, data, format)
			if err == nil {
				res.Format = format
				return res, nil
			}
			c.logger.Debug("structural extraction failed, falling back",
				"format", format, "error", err)
		} else {
			c.logger.Debug("skipping structural tier for large input",
				"format", format, "size", size, "threshold", c.cfg.StructuralSkipBytes)
		}
	}

	if lightweightFormats[format] {
		res, err := c.lightweight(ctx, data, format)
		if err == nil {
			res.Format = format
			return res, nil
		}
		c.logger.Debug("lightweight extraction failed, falling back",
			"format", format, "error", err)
	}

	res := Legacy(data)
	res.Format = format
	return res, nil
}

// BatchItem is one input to ExtractBatch.
type BatchItem struct {
	Name   string
	Data   []byte
	Format types.Format
}

// BatchResult pairs one batch item with its extraction outcome. Err is
// non-nil only when the individual file exceeded the per-file ceiling.
type BatchResult struct {
	Name   string
	Result *types.ExtractionResult
	Err    error
}

// ExtractBatch extracts a set of documents. The aggregate ceiling is
// enforced before any extractor runs; a batch over the ceiling is
// rejected wholesale with ErrOversizedInput.
func (c *Coordinator) ExtractBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	var total int64
	for _, it := range items {
		total += int64(len(it.Data))
	}
	if total > c.cfg.MaxBatchBytes {
		return nil, fmt.Errorf("%w: batch of %d bytes (max %d)", ErrOversizedInput, total, c.cfg.MaxBatchBytes)
	}

	results := make([]BatchResult, 0, len(items))
	for _, it := range items {
		res, err := c.Extract(ctx, it.Data, it.Format)
		results = append(results, BatchResult{Name: it.Name, Result: res, Err: err})
	}
	return results, nil
}

// workerStructural runs the structural tier in an isolated subprocess:
// the current binary re-invoked with the extract-worker subcommand,
// document bytes on stdin, JSON result on stdout. The isolate runner
// kills the worker on timeout and discards partial output.
func (c *Coordinator) workerStructural(ctx context.Context, data []byte, format types.Format) (*types.ExtractionResult, error) {
	bin := c.cfg.WorkerPath
	if bin == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating worker binary: %w", err)
		}
		bin = exe
	}

	runner := isolate.NewRunner(bin, []string{"extract-worker", string(format)}, c.cfg.StructuralTimeout)
	out, err := runner.Call(ctx, data)
	if err != nil {
		return nil, err
	}

	var res types.ExtractionResult
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, fmt.Errorf("decoding worker output: %w", err)
	}
	if res.Method != types.MethodStructural || len(res.Paragraphs) == 0 {
		return nil, errors.New("worker produced no usable content")
	}
	return &res, nil
}
