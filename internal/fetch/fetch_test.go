// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/httputil"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func TestDocumentByExtension(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer ts.Close()

	data, format, err := Document(context.Background(), ts.Client(), ts.URL+"/report.pdf", Config{})
	require.NoError(t, err)
	assert.Equal(t, types.FormatPDF, format)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestDocumentByContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>hi</p></body></html>"))
	}))
	defer ts.Close()

	_, format, err := Document(context.Background(), ts.Client(), ts.URL+"/page", Config{})
	require.NoError(t, err)
	assert.Equal(t, types.FormatHTML, format)
}

func TestDocumentUnknownTypeFallsBackToText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("raw bytes"))
	}))
	defer ts.Close()

	_, format, err := Document(context.Background(), ts.Client(), ts.URL+"/blob", Config{})
	require.NoError(t, err)
	assert.Equal(t, types.FormatTXT, format)
}

func TestDocumentSizeCap(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(make([]byte, 2048))
	}))
	defer ts.Close()

	_, _, err := Document(context.Background(), ts.Client(), ts.URL+"/big.pdf", Config{MaxBytes: 1024})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestDocumentNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, _, err := Document(context.Background(), ts.Client(), ts.URL+"/gone.docx", Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestDocumentRetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("content"))
	}))
	defer ts.Close()

	data, _, err := Document(context.Background(), ts.Client(), ts.URL+"/doc.txt", Config{})
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/a.pdf"))
	assert.True(t, IsURL("http://example.com/a.pdf"))
	assert.False(t, IsURL("./a.pdf"))
	assert.False(t, IsURL("a.pdf"))
}
