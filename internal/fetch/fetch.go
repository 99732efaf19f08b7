// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves remote documents for scanning. Downloads are
// bounded in size, retried on rate limiting, and never written to disk;
// the bytes go straight into the extraction pipeline.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/httputil"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Config holds download settings.
type Config struct {
	// Timeout bounds the whole request (default 60s).
	Timeout time.Duration

	// MaxBytes caps the response body (default 50 MB, matching the
	// per-file extraction ceiling).
	MaxBytes int64

	// UserAgent identifies the client (default "aegis/0.1").
	UserAgent string

	// MaxRetries bounds 429 retries (0 = library default).
	MaxRetries int
}

func (c *Config) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 50 * 1024 * 1024
	}
	if c.UserAgent == "" {
		c.UserAgent = "aegis/0.1"
	}
}

// contentTypeFormats maps response media types to document formats,
// used when the URL path has no recognizable extension.
var contentTypeFormats = map[string]types.Format{
	"application/pdf": types.FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   types.FormatDOCX,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": types.FormatPPTX,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         types.FormatXLSX,
	"text/html":     types.FormatHTML,
	"text/markdown": types.FormatMD,
	"text/plain":    types.FormatTXT,
}

// IsURL reports whether the argument names a remote document rather
// than a local path.
func IsURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// Document downloads one document into memory. The format comes from
// the URL path extension when recognizable, otherwise from the
// Content-Type header, otherwise raw text.
func Document(ctx context.Context, client *http.Client, rawURL string, cfg Config) ([]byte, types.Format, error) {
	cfg.defaults()

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("parsing URL: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(reqCtx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("reading body: %w", err)
	}
	if int64(len(data)) > cfg.MaxBytes {
		return nil, "", fmt.Errorf("response from %s exceeds %d bytes", rawURL, cfg.MaxBytes)
	}

	return data, detectFormat(parsed.Path, resp.Header.Get("Content-Type")), nil
}

func detectFormat(urlPath, contentType string) types.Format {
	if format := types.DetectFormat(urlPath); format != types.FormatTXT || strings.HasSuffix(urlPath, ".txt") {
		return format
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if format, ok := contentTypeFormats[mediaType]; ok {
			return format
		}
	}
	return types.FormatTXT
}
