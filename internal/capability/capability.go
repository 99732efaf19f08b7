// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package capability discovers which optional analysis dependencies are
// usable. The probe runs once at process startup; nothing else in the
// system is allowed to do dependency discovery. An unavailable
// dependency is an expected state, not an error: it is recorded as
// false in the capability map and checkers that require it are skipped.
package capability

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/isolate"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Capability names. Checkers declare requirements against these.
const (
	StatisticalSpellcheck = "statistical-spellcheck"
	DependencyParser      = "dependency-parser"
	LanguageModel         = "language-model"
	TerminologyDB         = "terminology-db"
)

// probe is one dependency check. check must honor its context deadline.
type probe struct {
	name  string
	check func(ctx context.Context, cfg types.ProbeConfig) error
}

// probes lists every optional dependency in a fixed order. The order
// only affects log output; the resulting map is order-free.
var probes = []probe{
	{StatisticalSpellcheck, probeSpellEngine},
	{DependencyParser, probeParser},
	{LanguageModel, probeLanguageModel},
	{TerminologyDB, probeTerminologyDB},
}

// Known returns the names of every capability the probe set declares.
// Checker registration validates against this list.
func Known() []string {
	out := make([]string, len(probes))
	for i, p := range probes {
		out[i] = p.name
	}
	return out
}

// Probe checks every optional dependency exactly once and returns the
// immutable capability map. Initialization failures are logged and
// recorded as false; Probe itself never fails, and each individual
// check is bounded by the configured probe timeout.
func Probe(ctx context.Context, cfg types.ProbeConfig) types.CapabilityMap {
	cfg.Defaults()

	caps := make(types.CapabilityMap, len(probes))
	for _, p := range probes {
		pctx, cancel := context.WithTimeout(ctx, cfg.ProbeTimeout)
		err := p.check(pctx, cfg)
		cancel()

		caps[p.name] = err == nil
		if err != nil {
			cfg.Logger.Warn("capability unavailable", "capability", p.name, "reason", err)
		} else {
			cfg.Logger.Debug("capability available", "capability", p.name)
		}
	}
	return caps
}

// spellEngines are tried in order; the first binary that answers a
// version invocation wins.
var spellEngines = []string{"hunspell", "aspell"}

func probeSpellEngine(ctx context.Context, _ types.ProbeConfig) error {
	var lastErr error
	for _, bin := range spellEngines {
		r := isolate.NewRunner(bin, []string{"--version"}, 0)
		if !r.Available() {
			lastErr = fmt.Errorf("%s not on PATH", bin)
			continue
		}
		if _, err := r.Call(ctx, nil); err != nil {
			lastErr = fmt.Errorf("%s did not answer version probe: %w", bin, err)
			continue
		}
		return nil
	}
	return lastErr
}

func probeParser(ctx context.Context, _ types.ProbeConfig) error {
	r := isolate.NewRunner("udpipe", []string{"--version"}, 0)
	if !r.Available() {
		return fmt.Errorf("udpipe not on PATH")
	}
	if _, err := r.Call(ctx, nil); err != nil {
		return fmt.Errorf("udpipe did not answer version probe: %w", err)
	}
	return nil
}

func probeLanguageModel(_ context.Context, cfg types.ProbeConfig) error {
	return readableFile(filepath.Join(cfg.DataDir, "wordfreq.txt"))
}

func probeTerminologyDB(_ context.Context, cfg types.ProbeConfig) error {
	return readableFile(filepath.Join(cfg.DataDir, "terminology.txt"))
}

func readableFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("missing %s", path)
	}
	if info.IsDir() || info.Size() == 0 {
		return fmt.Errorf("%s is not a usable model file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	f.Close()
	return nil
}
