// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package capability

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

func testConfig(dataDir string) types.ProbeConfig {
	return types.ProbeConfig{
		DataDir:      dataDir,
		ProbeTimeout: 2 * time.Second,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

func TestProbeNeverFails(t *testing.T) {
	// Empty data dir, binaries may or may not exist on the host: the
	// probe must still return an entry for every capability.
	caps := Probe(context.Background(), testConfig(t.TempDir()))

	for _, name := range []string{StatisticalSpellcheck, DependencyParser, LanguageModel, TerminologyDB} {
		_, ok := caps[name]
		require.True(t, ok, "capability %s not probed", name)
	}
}

func TestProbeModelFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordfreq.txt"), []byte("the 1000\n"), 0o644))

	caps := Probe(context.Background(), testConfig(dir))

	require.True(t, caps.Has(LanguageModel), "model file present, capability should be available")
	require.False(t, caps.Has(TerminologyDB), "terminology file absent, capability should be unavailable")
}

func TestProbeRejectsEmptyModelFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wordfreq.txt"), nil, 0o644))

	caps := Probe(context.Background(), testConfig(dir))
	require.False(t, caps.Has(LanguageModel))
}

func TestCapabilityMapHasAll(t *testing.T) {
	caps := types.CapabilityMap{"a": true, "b": false}

	require.True(t, caps.HasAll(nil))
	require.True(t, caps.HasAll([]string{"a"}))
	require.False(t, caps.HasAll([]string{"a", "b"}))
	require.False(t, caps.HasAll([]string{"missing"}))
}
