// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists scan results so repeated reviews of a
// document can be compared over time. Only the CLI uses it; the review
// core never touches persistence.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Store manages the scan-history SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// Entry is one recorded scan.
type Entry struct {
	ID         int64     `json:"id" yaml:"id"`
	Path       string    `json:"path" yaml:"path"`
	Format     string    `json:"format" yaml:"format"`
	Method     string    `json:"method" yaml:"method"`
	Confidence string    `json:"confidence" yaml:"confidence"`
	Score      int       `json:"score" yaml:"score"`
	Grade      string    `json:"grade" yaml:"grade"`
	IssueCount int       `json:"issue_count" yaml:"issue_count"`
	ScannedAt  time.Time `json:"scanned_at" yaml:"scanned_at"`

	// SeverityCounts is stored as JSON in a single column.
	SeverityCounts map[string]int `json:"severity_counts" yaml:"severity_counts"`
}

// NewStore opens or creates the history database and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	cfg.Defaults()

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db, maxEntries: cfg.MaxEntries}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			format TEXT,
			method TEXT,
			confidence TEXT,
			score INTEGER NOT NULL,
			grade TEXT NOT NULL,
			issue_count INTEGER NOT NULL,
			severity_counts TEXT,
			scanned_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_path ON scans(path)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one scan outcome.
func (s *Store) Record(ctx context.Context, path string, doc *types.ExtractionResult, result *types.ReviewResult) error {
	counts, err := json.Marshal(result.SeverityCounts)
	if err != nil {
		return fmt.Errorf("encoding severity counts: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scans (path, format, method, confidence, score, grade, issue_count, severity_counts, scanned_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		path, string(doc.Format), string(doc.Method), string(doc.Confidence),
		result.Score, result.Grade, len(result.Issues), string(counts),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording scan: %w", err)
	}
	return nil
}

// Recent returns the latest scans, newest first. n <= 0 uses the
// configured default.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = s.maxEntries
	}
	return s.query(ctx,
		`SELECT id, path, format, method, confidence, score, grade, issue_count, severity_counts, scanned_at
		 FROM scans ORDER BY id DESC LIMIT ?`, n)
}

// ForFile returns the scan history of one document path, newest first.
func (s *Store) ForFile(ctx context.Context, path string, n int) ([]Entry, error) {
	if n <= 0 {
		n = s.maxEntries
	}
	return s.query(ctx,
		`SELECT id, path, format, method, confidence, score, grade, issue_count, severity_counts, scanned_at
		 FROM scans WHERE path = ? ORDER BY id DESC LIMIT ?`, path, n)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var counts, scannedAt string
		if err := rows.Scan(&e.ID, &e.Path, &e.Format, &e.Method, &e.Confidence,
			&e.Score, &e.Grade, &e.IssueCount, &counts, &scannedAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if counts != "" {
			if err := json.Unmarshal([]byte(counts), &e.SeverityCounts); err != nil {
				return nil, fmt.Errorf("decoding severity counts: %w", err)
			}
		}
		if t, err := time.Parse(time.RFC3339Nano, scannedAt); err == nil {
			e.ScannedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
