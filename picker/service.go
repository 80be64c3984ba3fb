// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package picker

import (
	"cmp"
	"slices"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/render"
	"github.com/gogpu/ggraph/surface"
)

// minExtent keeps degenerate boxes indexable.
const minExtent = 1e-9

// entry is a node in the spatial index. rect is the box it was inserted
// with, so it can be found again after the node moves.
type entry struct {
	node  graphic.Node
	z     int
	box   ggraph.Bounds
	rect  rtreego.Rect
	added bool
}

func (e *entry) Bounds() rtreego.Rect { return e.rect }

// Option configures a Service.
type Option func(*Service)

// WithPickContext sets the scratch surface used for exact tests. A nil
// context limits picking to bounding boxes of imprecise nodes.
func WithPickContext(pc surface.Context) Option {
	return func(s *Service) {
		s.pickContext = pc
		s.pcSet = true
	}
}

// WithRenderService sets the render service whose renderers and theme
// the pickers reuse.
func WithRenderService(rs *render.Service) Option {
	return func(s *Service) {
		s.render = rs
	}
}

// WithPicker adds a picker, replacing the built-in one for its type.
func WithPicker(p Picker) Option {
	return func(s *Service) {
		s.extra = append(s.extra, p)
	}
}

// Service holds a scene for picking. Nodes are indexed by their bounding
// boxes in an R-tree; later-added nodes are on top.
//
// Methods are safe for concurrent use, but nodes must not be mutated
// while a pick runs.
type Service struct {
	render      *render.Service
	pickContext surface.Context
	pcSet       bool
	extra       []Picker
	pickers     map[graphic.Type]Picker

	mu      sync.Mutex
	tree    *rtreego.Rtree
	entries map[graphic.Node]*entry
	nextZ   int
}

// NewService creates a pick service. Without WithPickContext it owns a
// surface.PickContext.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.render == nil {
		s.render = render.NewService()
	}
	if !s.pcSet {
		s.pickContext = surface.NewPickContext(0, 0)
	}

	s.pickers = make(map[graphic.Type]Picker)
	for _, typ := range []graphic.Type{
		graphic.TypeCircle, graphic.TypeArc, graphic.TypeRect,
		graphic.TypeLine, graphic.TypeText,
	} {
		if r, ok := s.render.Renderer(typ); ok {
			s.pickers[typ] = NewShapePicker(r, s.render)
		}
	}
	s.pickers[graphic.TypeGlyph] = glyphPicker{lookup: s.Picker}
	for _, p := range s.extra {
		s.pickers[p.Type()] = p
	}

	s.tree = rtreego.NewTree(2, 4, 16)
	s.entries = make(map[graphic.Node]*entry)
	return s
}

// Picker returns the picker for typ.
func (s *Service) Picker(typ graphic.Type) (Picker, bool) {
	p, ok := s.pickers[typ]
	return p, ok
}

// Params returns the pick parameters of this service.
func (s *Service) Params() Params {
	return Params{PickContext: s.pickContext, Theme: s.render.Theme()}
}

// Contains reports whether pt hits n.
func (s *Service) Contains(n graphic.Node, pt ggraph.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contains(n, pt)
}

func (s *Service) contains(n graphic.Node, pt ggraph.Point) bool {
	p, ok := s.pickers[n.Type()]
	if !ok {
		ggraph.Logger().Debug("picker: no picker", "type", n.Type())
		return false
	}
	return p.Contains(n, pt, s.Params())
}

// Add puts nodes into the scene on top of the existing ones. Adding a
// node twice moves it to the top.
func (s *Service) Add(nodes ...graphic.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range nodes {
		if e, ok := s.entries[n]; ok {
			s.unindex(e)
		}
		e := &entry{node: n, z: s.nextZ}
		s.nextZ++
		s.entries[n] = e
		s.index(e)
	}
}

// Remove takes n out of the scene. It reports whether n was present.
func (s *Service) Remove(n graphic.Node) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[n]
	if !ok {
		return false
	}
	s.unindex(e)
	delete(s.entries, n)
	return true
}

// Len returns the number of nodes in the scene.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Refresh re-indexes nodes whose bounds changed since they were indexed
// and returns how many moved. Pick calls it first.
func (s *Service) Refresh() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh()
}

func (s *Service) refresh() int {
	moved := 0
	for _, e := range s.entries {
		if b := e.node.AABBBounds(); b != e.box {
			s.unindex(e)
			s.index(e)
			moved++
		}
	}
	return moved
}

func (s *Service) index(e *entry) {
	e.box = e.node.AABBBounds()
	if e.box.IsEmpty() {
		return
	}
	lo := rtreego.Point{e.box.X1, e.box.Y1}
	hi := rtreego.Point{
		max(e.box.X2, e.box.X1+minExtent),
		max(e.box.Y2, e.box.Y1+minExtent),
	}
	rect, err := rtreego.NewRectFromPoints(lo, hi)
	if err != nil {
		ggraph.Logger().Debug("picker: unindexable bounds", "type", e.node.Type(), "err", err)
		return
	}
	e.rect = rect
	s.tree.Insert(e)
	e.added = true
}

func (s *Service) unindex(e *entry) {
	if e.added {
		s.tree.Delete(e)
		e.added = false
	}
}

// candidates returns the nodes whose boxes contain pt, topmost first.
func (s *Service) candidates(pt ggraph.Point) []*entry {
	s.refresh()
	hits := s.tree.SearchIntersect(rtreego.Point{pt.X, pt.Y}.ToRect(minExtent))
	out := make([]*entry, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*entry))
	}
	slices.SortFunc(out, func(a, b *entry) int {
		return cmp.Compare(b.z, a.z)
	})
	return out
}

// Pick returns the topmost node hit by pt.
func (s *Service) Pick(pt ggraph.Point) (graphic.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.candidates(pt) {
		if s.contains(e.node, pt) {
			return e.node, true
		}
	}
	return nil, false
}

// PickAll returns every node hit by pt, topmost first.
func (s *Service) PickAll(pt ggraph.Point) []graphic.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []graphic.Node
	for _, e := range s.candidates(pt) {
		if s.contains(e.node, pt) {
			out = append(out, e.node)
		}
	}
	return out
}
