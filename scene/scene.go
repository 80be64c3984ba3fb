// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/theme"
)

// Default canvas size for scenes that do not set one.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// Scene is an ordered list of root nodes, drawn first to last, with the
// canvas they are meant for.
type Scene struct {
	Width      int
	Height     int
	Background string

	// Theme, when set, supplies defaults in place of theme.Default.
	Theme *theme.Theme

	Nodes []graphic.Node

	ids map[string]graphic.Node
}

// New creates an empty scene of the default size.
func New() *Scene {
	return &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		ids:    make(map[string]graphic.Node),
	}
}

// Add appends root nodes.
func (s *Scene) Add(nodes ...graphic.Node) {
	s.Nodes = append(s.Nodes, nodes...)
}

// Name records an id for n. Ids are unique; naming a second node with
// the same id replaces the first.
func (s *Scene) Name(id string, n graphic.Node) {
	s.ids[id] = n
}

// Lookup returns the node with the given id.
func (s *Scene) Lookup(id string) (graphic.Node, bool) {
	n, ok := s.ids[id]
	return n, ok
}

// ID returns the id of n, or "" when it has none.
func (s *Scene) ID(n graphic.Node) string {
	for id, m := range s.ids {
		if m == n {
			return id
		}
	}
	return ""
}
