// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package checker defines the analysis-pass contract and the static
// registry that validates and filters the installed checkers. Checkers
// are plugins: the orchestrator knows nothing about their rules, only
// that they take extracted paragraphs and return issues, deterministically.
package checker

import (
	"fmt"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

// Context is the read-only material a checker may consult beyond the
// paragraph list.
type Context struct {
	FullText     string
	Headings     []types.Heading
	Tables       []types.Table
	Figures      []types.Figure
	WordCount    int
	Capabilities types.CapabilityMap

	// Options carries collaborator-supplied knobs, opaque to the core.
	Options map[string]string
}

// Checker is one analysis pass. Implementations must be deterministic:
// no clock, no randomness, no network. Issues are returned in emission
// order; the orchestrator preserves it.
type Checker interface {
	Check(paragraphs []types.Paragraph, rctx *Context) []types.Issue
}

// Descriptor declares one checker to the registry.
type Descriptor struct {
	// Key is the stable identifier used for enable/disable filtering.
	Key string

	// Category tags every issue the checker emits.
	Category string

	// RuleIDPrefix namespaces the checker's rule IDs. The registry
	// rejects collisions at startup.
	RuleIDPrefix string

	// RequiredCapabilities must all be present in the capability map or
	// the checker is silently excluded from runs.
	RequiredCapabilities []string

	// New constructs a fresh checker instance.
	New func() Checker
}

// Registry is the validated, ordered set of installed checkers. It is
// built once at startup and read-only afterward.
type Registry struct {
	descriptors []Descriptor
	byKey       map[string]Descriptor
}

// NewRegistry validates the descriptor list: non-empty unique keys,
// unique rule-ID prefixes, and no reference to a capability outside the
// declared set. Registration order is preserved and becomes checker
// execution order.
func NewRegistry(descriptors []Descriptor, knownCapabilities []string) (*Registry, error) {
	known := make(map[string]bool, len(knownCapabilities))
	for _, c := range knownCapabilities {
		known[c] = true
	}

	byKey := make(map[string]Descriptor, len(descriptors))
	prefixes := make(map[string]string, len(descriptors))

	for _, d := range descriptors {
		if d.Key == "" || d.RuleIDPrefix == "" {
			return nil, fmt.Errorf("checker descriptor missing key or rule prefix: %+v", d)
		}
		if d.New == nil {
			return nil, fmt.Errorf("checker %q has no constructor", d.Key)
		}
		if _, dup := byKey[d.Key]; dup {
			return nil, fmt.Errorf("duplicate checker key %q", d.Key)
		}
		if owner, dup := prefixes[d.RuleIDPrefix]; dup {
			return nil, fmt.Errorf("rule prefix %q claimed by both %q and %q", d.RuleIDPrefix, owner, d.Key)
		}
		for _, c := range d.RequiredCapabilities {
			if !known[c] {
				return nil, fmt.Errorf("checker %q requires undeclared capability %q", d.Key, c)
			}
		}
		byKey[d.Key] = d
		prefixes[d.RuleIDPrefix] = d.Key
	}

	return &Registry{descriptors: descriptors, byKey: byKey}, nil
}

// Descriptors returns all registered checkers in registration order.
func (r *Registry) Descriptors() []Descriptor {
	return r.descriptors
}

// Get looks up a checker by key.
func (r *Registry) Get(key string) (Descriptor, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// Enabled resolves the checkers selected by the config, intersected
// with capability availability, in registration order. A checker with
// unmet capability requirements is excluded, not failed.
func (r *Registry) Enabled(cfg types.ReviewConfig, caps types.CapabilityMap) []Descriptor {
	var out []Descriptor
	for _, d := range r.descriptors {
		if !cfg.Enabled(d.Key) {
			continue
		}
		if !caps.HasAll(d.RequiredCapabilities) {
			continue
		}
		out = append(out, d)
	}
	return out
}
