// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

func TestBuiltinResolve(t *testing.T) {
	s := Builtin()

	full, err := s.Resolve("full")
	if err != nil {
		t.Fatalf("Resolve(full) error = %v", err)
	}
	if len(full.EnabledCheckers) != 0 || full.Profile != "full" {
		t.Fatalf("full = %+v", full)
	}

	compliance, err := s.Resolve("compliance")
	if err != nil {
		t.Fatalf("Resolve(compliance) error = %v", err)
	}
	if compliance.SeverityFloor != types.SeverityLow {
		t.Fatalf("compliance floor = %v", compliance.SeverityFloor)
	}
	if len(compliance.EnabledCheckers) != 3 {
		t.Fatalf("compliance checkers = %v", compliance.EnabledCheckers)
	}

	if _, err := s.Resolve("nope"); err == nil {
		t.Fatal("Resolve(nope) succeeded")
	}
}

func TestLoadMergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	content := `
quick:
  checkers: [passive]
editorial:
  checkers: [passive, claritystyle, readability]
  severity_floor: medium
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// File entry shadows the built-in.
	quick, err := s.Resolve("quick")
	if err != nil {
		t.Fatalf("Resolve(quick) error = %v", err)
	}
	if len(quick.EnabledCheckers) != 1 || quick.EnabledCheckers[0] != "passive" {
		t.Fatalf("quick = %+v", quick)
	}

	editorial, err := s.Resolve("editorial")
	if err != nil {
		t.Fatalf("Resolve(editorial) error = %v", err)
	}
	if editorial.SeverityFloor != types.SeverityMedium {
		t.Fatalf("editorial floor = %v", editorial.SeverityFloor)
	}

	// Untouched built-ins survive the merge.
	if _, err := s.Resolve("compliance"); err != nil {
		t.Fatalf("Resolve(compliance) error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := s.Resolve("full"); err != nil {
		t.Fatalf("built-ins missing: %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed input")
	}
}
