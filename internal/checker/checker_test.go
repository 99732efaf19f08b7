// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package checker

import (
	"testing"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

type nopChecker struct{}

func (nopChecker) Check([]types.Paragraph, *Context) []types.Issue { return nil }

func desc(key, prefix string, caps ...string) Descriptor {
	return Descriptor{
		Key:                  key,
		Category:             key,
		RuleIDPrefix:         prefix,
		RequiredCapabilities: caps,
		New:                  func() Checker { return nopChecker{} },
	}
}

func TestNewRegistryValidation(t *testing.T) {
	known := []string{"statistical-spellcheck", "language-model"}

	tests := []struct {
		name    string
		descs   []Descriptor
		wantErr bool
	}{
		{
			name:  "valid",
			descs: []Descriptor{desc("passive", "GRM"), desc("spelling", "SPL", "statistical-spellcheck")},
		},
		{
			name:    "duplicate key",
			descs:   []Descriptor{desc("passive", "GRM"), desc("passive", "XYZ")},
			wantErr: true,
		},
		{
			name:    "duplicate prefix",
			descs:   []Descriptor{desc("passive", "GRM"), desc("acronym", "GRM")},
			wantErr: true,
		},
		{
			name:    "undeclared capability",
			descs:   []Descriptor{desc("spelling", "SPL", "quantum-oracle")},
			wantErr: true,
		},
		{
			name:    "missing key",
			descs:   []Descriptor{desc("", "GRM")},
			wantErr: true,
		},
		{
			name: "missing constructor",
			descs: []Descriptor{{
				Key:          "passive",
				RuleIDPrefix: "GRM",
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.descs, known)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnabledOrderAndFiltering(t *testing.T) {
	known := []string{"statistical-spellcheck"}
	reg, err := NewRegistry([]Descriptor{
		desc("passive", "GRM"),
		desc("spelling", "SPL", "statistical-spellcheck"),
		desc("acronym", "ACR"),
	}, known)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	// All enabled, capability missing: spelling drops out silently.
	got := reg.Enabled(types.ReviewConfig{}, types.CapabilityMap{})
	if len(got) != 2 || got[0].Key != "passive" || got[1].Key != "acronym" {
		t.Fatalf("Enabled() without capability = %v", keys(got))
	}

	// Capability present: registration order holds.
	caps := types.CapabilityMap{"statistical-spellcheck": true}
	got = reg.Enabled(types.ReviewConfig{}, caps)
	want := []string{"passive", "spelling", "acronym"}
	if len(got) != len(want) {
		t.Fatalf("Enabled() = %v, want %v", keys(got), want)
	}
	for i, k := range want {
		if got[i].Key != k {
			t.Fatalf("Enabled()[%d] = %q, want %q", i, got[i].Key, k)
		}
	}

	// Explicit selection filters by key.
	cfg := types.ReviewConfig{EnabledCheckers: []string{"acronym"}}
	got = reg.Enabled(cfg, caps)
	if len(got) != 1 || got[0].Key != "acronym" {
		t.Fatalf("Enabled() with selection = %v", keys(got))
	}
}

func TestGet(t *testing.T) {
	reg, err := NewRegistry([]Descriptor{desc("passive", "GRM")}, nil)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if _, ok := reg.Get("passive"); !ok {
		t.Fatal("Get(passive) missing")
	}
	if _, ok := reg.Get("nope"); ok {
		t.Fatal("Get(nope) unexpectedly present")
	}
}

func keys(ds []Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Key
	}
	return out
}
