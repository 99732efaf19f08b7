// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "sort"

// CapabilityMap records which optional analysis dependencies were found
// at startup. It is computed once by the probe and treated as immutable
// afterward: checkers read it, nothing writes it.
type CapabilityMap map[string]bool

// Has reports whether the named capability is available.
func (m CapabilityMap) Has(name string) bool {
	return m[name]
}

// HasAll reports whether every named capability is available. An empty
// requirement list is trivially satisfied.
func (m CapabilityMap) HasAll(names []string) bool {
	for _, n := range names {
		if !m[n] {
			return false
		}
	}
	return true
}

// Names returns all probed capability names in sorted order.
func (m CapabilityMap) Names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
