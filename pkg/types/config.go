// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"log/slog"
	"time"
)

// ExtractionConfig holds settings for the extraction coordinator.
type ExtractionConfig struct {
	// StructuralTimeout is the hard wall-clock limit for the isolated
	// high-fidelity worker (default 120s). On expiry the worker is
	// force-terminated and its partial output discarded.
	StructuralTimeout time.Duration `json:"structural_timeout" yaml:"structural_timeout"`

	// StructuralSkipBytes skips the high-fidelity tier entirely for
	// inputs larger than this (default 2 MB).
	StructuralSkipBytes int64 `json:"structural_skip_bytes" yaml:"structural_skip_bytes"`

	// MaxFileBytes is the absolute per-file ceiling (default 50 MB).
	// Inputs above it are rejected before any extractor runs.
	MaxFileBytes int64 `json:"max_file_bytes" yaml:"max_file_bytes"`

	// MaxBatchBytes is the aggregate ceiling for batch calls (default 200 MB).
	MaxBatchBytes int64 `json:"max_batch_bytes" yaml:"max_batch_bytes"`

	// WorkerPath overrides the worker binary (default: the current
	// executable re-invoked with the extract-worker subcommand).
	WorkerPath string `json:"worker_path,omitempty" yaml:"worker_path,omitempty"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// Defaults fills unset fields with their default values.
func (c *ExtractionConfig) Defaults() {
	if c.StructuralTimeout <= 0 {
		c.StructuralTimeout = 120 * time.Second
	}
	if c.StructuralSkipBytes <= 0 {
		c.StructuralSkipBytes = 2 * 1024 * 1024
	}
	if c.MaxFileBytes <= 0 {
		c.MaxFileBytes = 50 * 1024 * 1024
	}
	if c.MaxBatchBytes <= 0 {
		c.MaxBatchBytes = 200 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// ProbeConfig holds settings for the capability probe.
type ProbeConfig struct {
	// DataDir is where model files and dictionaries live (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// ProbeTimeout bounds each individual dependency probe (default 5s).
	ProbeTimeout time.Duration `json:"probe_timeout" yaml:"probe_timeout"`

	// Logger for warnings about unavailable capabilities.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// Defaults fills unset fields with their default values.
func (c *ProbeConfig) Defaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// ReviewConfig selects and filters checkers for one review run.
type ReviewConfig struct {
	// EnabledCheckers restricts the run to the named checker keys.
	// Nil or empty means all registered checkers.
	EnabledCheckers []string `json:"enabled_checkers,omitempty" yaml:"enabled_checkers,omitempty"`

	// SeverityFloor drops issues below the given severity. The default
	// (info) keeps everything.
	SeverityFloor Severity `json:"severity_floor" yaml:"severity_floor"`

	// Profile is an opaque label recorded for reporting. The collaborator
	// resolves profiles into EnabledCheckers before calling the core.
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`

	// Logger for per-checker diagnostics.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// Defaults fills unset fields with their default values.
func (c *ReviewConfig) Defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Enabled reports whether the named checker is selected by this config.
func (c *ReviewConfig) Enabled(key string) bool {
	if len(c.EnabledCheckers) == 0 {
		return true
	}
	for _, k := range c.EnabledCheckers {
		if k == key {
			return true
		}
	}
	return false
}

// HistoryConfig holds settings for the scan-history store used by the
// CLI. The review core itself never touches persistence.
type HistoryConfig struct {
	// DBPath is the SQLite database location (default "aegis-history.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxEntries caps how many scans Recent returns by default (default 20).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Defaults fills unset fields with their default values.
func (c *HistoryConfig) Defaults() {
	if c.DBPath == "" {
		c.DBPath = "aegis-history.db"
	}
	if c.MaxEntries <= 0 {
		c.MaxEntries = 20
	}
}
