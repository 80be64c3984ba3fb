// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"maps"
	"slices"

	"github.com/samber/lo"

	"github.com/gogpu/ggraph"
)

// GlyphState is the attribute delta of one named glyph state: overrides
// for the glyph and a parallel list of overrides for its children.
type GlyphState struct {
	Attributes    ggraph.Attrs
	SubAttributes []ggraph.Attrs
}

// GlyphOption configures a Glyph.
type GlyphOption func(*Glyph)

// WithOnInit sets a hook run once at the end of NewGlyph, typically to
// build the children.
func WithOnInit(fn func(*Glyph)) GlyphOption {
	return func(g *Glyph) {
		g.onInit = fn
	}
}

// WithOnUpdate sets a hook run after each attribute change on the glyph.
func WithOnUpdate(fn func(*Glyph)) GlyphOption {
	return func(g *Glyph) {
		g.onUpdate = fn
	}
}

// Glyph is a composite node. Its children read through to the glyph's
// attribute bag, so they share its position, transform and style unless
// they set their own values. A glyph does no drawing of its own.
type Glyph struct {
	Graphic
	children    []Node
	glyphStates map[string]GlyphState
	glyphProxy  func(name string, states []string) (GlyphState, bool)
	onInit      func(*Glyph)
	onUpdate    func(*Glyph)
}

// NewGlyph creates a glyph with no children.
func NewGlyph(attrs ggraph.Attrs, opts ...GlyphOption) *Glyph {
	g := new(Glyph)
	g.init(TypeGlyph, attrs, g)
	for _, opt := range opts {
		opt(g)
	}
	if g.onInit != nil {
		g.onInit(g)
	}
	return g
}

// SetSubGraphic replaces the children. Previous children are detached and
// stop reading through to the glyph; new ones are attached. A child
// attached to another glyph is moved.
func (g *Glyph) SetSubGraphic(children ...Node) {
	for _, c := range g.children {
		detach(c)
	}
	g.children = slices.Clone(children)
	for _, c := range g.children {
		cg := c.Base()
		if cg.host != nil && cg.host != g {
			cg.host.remove(c)
		}
		cg.host = g
		cg.attrs.parent = &g.attrs
		cg.markDirty(tagAll)
	}
	g.markDirty(TagShapeAndBounds | TagBounds)
}

// SubGraphic returns the children in draw order.
func (g *Glyph) SubGraphic() []Node {
	return slices.Clone(g.children)
}

func (g *Glyph) remove(c Node) {
	g.children = slices.DeleteFunc(g.children, func(n Node) bool { return n == c })
	detach(c)
	g.markDirty(TagShapeAndBounds | TagBounds)
}

func detach(c Node) {
	cg := c.Base()
	cg.host = nil
	cg.attrs.parent = nil
	cg.markDirty(tagAll)
}

// SetGlyphStates sets the static state table.
func (g *Glyph) SetGlyphStates(states map[string]GlyphState) {
	g.glyphStates = states
}

// SetGlyphStateProxy sets a resolver consulted instead of the state
// table. It reports false for unknown states.
func (g *Glyph) SetGlyphStateProxy(fn func(name string, states []string) (GlyphState, bool)) {
	g.glyphProxy = fn
}

func (g *Glyph) glyphState(name string, states []string) (GlyphState, bool) {
	if g.glyphProxy != nil {
		return g.glyphProxy(name, states)
	}
	if s, ok := g.glyphStates[name]; ok {
		return s, true
	}
	if a := g.Graphic.stateAttrs(name, states); a != nil {
		return GlyphState{Attributes: a}, true
	}
	return GlyphState{}, false
}

// UseStates folds the named states left to right into one delta for the
// glyph and one per child, snapshots normal values on first use, and
// applies them. Requesting the active list again does nothing.
func (g *Glyph) UseStates(states ...string) {
	if len(states) == 0 {
		g.ClearStates()
		return
	}
	if slices.Equal(states, g.current) {
		return
	}

	attrs := ggraph.Attrs{}
	subs := lo.Times(len(g.children), func(int) ggraph.Attrs { return ggraph.Attrs{} })
	for _, name := range states {
		st, ok := g.glyphState(name, states)
		if !ok {
			continue
		}
		maps.Copy(attrs, st.Attributes)
		for i := range subs {
			if i < len(st.SubAttributes) {
				maps.Copy(subs[i], st.SubAttributes[i])
			}
		}
	}

	for i, c := range g.children {
		c.Base().applyState(subs[i])
	}
	g.current = slices.Clone(states)
	g.applyState(attrs)
}

// ClearStates restores the glyph's and every child's pre-state values.
func (g *Glyph) ClearStates() {
	if !g.HasState() || g.normal == nil {
		return
	}
	for _, c := range g.children {
		c.Base().restoreNormal()
	}
	g.restoreNormal()
	g.current = nil
}

// invalidate marks every child stale after a glyph attribute change,
// since children derive their geometry from the shared bag.
func (g *Glyph) invalidate(keys []string) {
	g.Graphic.invalidate(keys)
	g.markChildren(tagAll)
	g.markDirty(TagShapeAndBounds | TagBounds)
	if g.onUpdate != nil {
		g.onUpdate(g)
	}
}

func (g *Glyph) markChildren(t Tag) {
	for _, c := range g.children {
		c.Base().markDirty(t)
	}
}

// Translate moves the glyph and invalidates its children.
func (g *Glyph) Translate(dx, dy float64) {
	g.Graphic.Translate(dx, dy)
	g.markChildren(TagPosition | TagBounds)
}

// TranslateTo moves the glyph and invalidates its children.
func (g *Glyph) TranslateTo(x, y float64) {
	g.Graphic.TranslateTo(x, y)
	g.markChildren(TagPosition | TagBounds)
}

// Scale scales the glyph and invalidates its children.
func (g *Glyph) Scale(sx, sy float64) {
	g.Graphic.Scale(sx, sy)
	g.markChildren(TagPosition | TagBounds)
}

// ScaleTo scales the glyph and invalidates its children.
func (g *Glyph) ScaleTo(sx, sy float64) {
	g.Graphic.ScaleTo(sx, sy)
	g.markChildren(TagPosition | TagBounds)
}

// Rotate rotates the glyph and invalidates its children.
func (g *Glyph) Rotate(angle float64) {
	g.Graphic.Rotate(angle)
	g.markChildren(TagPosition | TagBounds)
}

// RotateTo rotates the glyph and invalidates its children.
func (g *Glyph) RotateTo(angle float64) {
	g.Graphic.RotateTo(angle)
	g.markChildren(TagPosition | TagBounds)
}

// valid reports whether the glyph has children to draw.
func (g *Glyph) valid() bool {
	return len(g.children) > 0
}

// computeAABB is the union of the children's world bounds. Children
// already include the glyph transform through the shared bag.
func (g *Glyph) computeAABB() ggraph.Bounds {
	b := ggraph.EmptyBounds()
	for _, c := range g.children {
		if cb := c.AABBBounds(); !cb.IsEmpty() {
			b = b.Union(cb)
		}
	}
	return b
}

// Clone copies the glyph's bag and hooks and clones every child. The
// clones read through to the new glyph only. onInit is not run again.
func (g *Glyph) Clone() Node {
	out := new(Glyph)
	out.init(TypeGlyph, g.attrs.own, out)
	g.cloneInto(&out.Graphic)
	out.glyphStates = g.glyphStates
	out.glyphProxy = g.glyphProxy
	out.onInit = g.onInit
	out.onUpdate = g.onUpdate
	out.SetSubGraphic(lo.Map(g.children, func(c Node, _ int) Node {
		return c.Clone()
	})...)
	return out
}
