// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile resolves named review presets into checker
// selections. Profiles are a CLI convenience layer; the review core
// only ever sees the resolved checker list.
package profile

import (
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Profile is one named preset.
type Profile struct {
	// Checkers lists enabled checker keys; empty means all.
	Checkers []string `yaml:"checkers"`

	// SeverityFloor names the minimum severity to report ("info" when
	// empty).
	SeverityFloor string `yaml:"severity_floor"`
}

// builtins are always available. A profiles file may override them.
var builtins = map[string]Profile{
	"full": {},
	"quick": {
		Checkers: []string{"passive", "acronym", "structure"},
	},
	"compliance": {
		Checkers:      []string{"acronym", "structure", "tables"},
		SeverityFloor: "low",
	},
}

// Set holds the resolved profile table.
type Set struct {
	profiles map[string]Profile
}

// Builtin returns the compiled-in profile set.
func Builtin() *Set {
	return &Set{profiles: builtins}
}

// Load reads a YAML profile file and merges it over the built-ins.
// Entries in the file shadow built-ins of the same name. A missing file
// is not an error; the built-ins are returned.
func Load(path string) (*Set, error) {
	merged := make(map[string]Profile, len(builtins))
	for name, p := range builtins {
		merged[name] = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Set{profiles: merged}, nil
		}
		return nil, fmt.Errorf("reading profiles file: %w", err)
	}

	var fromFile map[string]Profile
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parsing profiles file %s: %w", path, err)
	}
	for name, p := range fromFile {
		merged[name] = p
	}
	return &Set{profiles: merged}, nil
}

// Names lists the available profiles, sorted.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve turns a profile name into a review config. An unknown name is
// an error listing the valid choices.
func (s *Set) Resolve(name string) (types.ReviewConfig, error) {
	p, ok := s.profiles[name]
	if !ok {
		return types.ReviewConfig{}, fmt.Errorf("unknown profile %q (available: %v)", name, s.Names())
	}

	cfg := types.ReviewConfig{
		EnabledCheckers: p.Checkers,
		Profile:         name,
	}
	if p.SeverityFloor != "" {
		floor, err := types.ParseSeverity(p.SeverityFloor)
		if err != nil {
			return types.ReviewConfig{}, fmt.Errorf("profile %q: %w", name, err)
		}
		cfg.SeverityFloor = floor
	}
	return cfg, nil
}
