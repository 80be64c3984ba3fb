// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"maps"
	"slices"

	"github.com/gogpu/ggraph"
)

// normalValue is an own attribute captured before a state overrode it.
// ok is false when the key was unset, so restoring deletes it.
type normalValue struct {
	value any
	ok    bool
}

// SetStates sets the static state table. Each state maps to the
// attributes it overrides.
func (g *Graphic) SetStates(states map[string]ggraph.Attrs) {
	g.states = states
}

// SetStateProxy sets a resolver consulted instead of the state table. It
// receives the state name and the full requested list.
func (g *Graphic) SetStateProxy(fn func(name string, states []string) ggraph.Attrs) {
	g.stateProxy = fn
}

// CurrentStates returns the active state names.
func (g *Graphic) CurrentStates() []string {
	return slices.Clone(g.current)
}

// HasState reports whether any state is active.
func (g *Graphic) HasState() bool {
	return len(g.current) > 0
}

func (g *Graphic) stateAttrs(name string, states []string) ggraph.Attrs {
	if g.stateProxy != nil {
		return g.stateProxy(name, states)
	}
	return g.states[name]
}

// UseStates applies the named states, later names overriding earlier
// ones. Requesting the active list again does nothing; the comparison is
// by name only, so a proxy whose output changed for the same names is
// not re-applied. An empty list clears states.
func (g *Graphic) UseStates(states ...string) {
	if len(states) == 0 {
		g.ClearStates()
		return
	}
	if slices.Equal(states, g.current) {
		return
	}
	merged := ggraph.Attrs{}
	for _, name := range states {
		maps.Copy(merged, g.stateAttrs(name, states))
	}
	g.current = slices.Clone(states)
	g.applyState(merged)
}

// ClearStates restores the attributes captured before the first state
// was applied. It does nothing when no state is active.
func (g *Graphic) ClearStates() {
	if !g.HasState() || g.normal == nil {
		return
	}
	g.restoreNormal()
	g.current = nil
}

// applyState snapshots normal values for the keys in attrs, restores keys
// the previous state set but attrs does not, then applies attrs.
func (g *Graphic) applyState(attrs ggraph.Attrs) {
	changes := make(map[string]normalValue, len(attrs))
	for k, v := range attrs {
		changes[k] = normalValue{value: v, ok: true}
	}

	next := make(map[string]normalValue, len(attrs))
	for k := range attrs {
		if nv, ok := g.normal[k]; ok {
			next[k] = nv
			continue
		}
		v, ok := g.attrs.own[k]
		next[k] = normalValue{value: v, ok: ok}
	}
	for k, nv := range g.normal {
		if _, ok := attrs[k]; !ok {
			changes[k] = nv
		}
	}
	g.normal = next
	g.apply(changes)
}

func (g *Graphic) restoreNormal() {
	if g.normal == nil {
		return
	}
	normal := g.normal
	g.normal = nil
	g.apply(normal)
}
