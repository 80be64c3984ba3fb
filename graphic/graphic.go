// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import (
	"math"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/theme"
)

// Type is the kind tag of a node. Its value names the theme section the
// node reads defaults from.
type Type string

// Node types.
const (
	TypeCircle Type = theme.TypeCircle
	TypeArc    Type = theme.TypeArc
	TypeRect   Type = theme.TypeRect
	TypeLine   Type = theme.TypeLine
	TypeText   Type = theme.TypeText
	TypeGlyph  Type = theme.TypeGlyph
)

// Tag is a set of dirty flags.
type Tag uint8

const (
	// TagShapeAndBounds marks derived shape data (segments, text layout)
	// and bounds as stale.
	TagShapeAndBounds Tag = 1 << iota

	// TagPosition marks the transform as stale.
	TagPosition

	// TagBounds marks bounds as stale.
	TagBounds

	tagAll = TagShapeAndBounds | TagPosition | TagBounds
)

// Pick modes.
const (
	PickAccurate  = "accurate"
	PickImprecise = "imprecise"
)

// Node is a drawable in the tree. All node types embed Graphic; Glyph
// overrides the operations that must reach its children.
type Node interface {
	Type() Type
	Base() *Graphic

	Attribute(key string) (any, bool)
	SetAttribute(key string, value any)
	SetAttributes(attrs ggraph.Attrs)

	Translate(dx, dy float64)
	TranslateTo(x, y float64)
	Scale(sx, sy float64)
	ScaleTo(sx, sy float64)
	Rotate(angle float64)
	RotateTo(angle float64)

	AABBBounds() ggraph.Bounds
	OBBBounds() (ggraph.OBB, error)
	Valid() bool

	UseStates(states ...string)
	ClearStates()

	Clone() Node
}

// shape is implemented by every concrete node and installed as the
// Graphic's self so base methods reach type-specific behaviour.
type shape interface {
	Node
	valid() bool
	invalidate(keys []string)
}

// localShape is a node with a local box placed by its transform.
type localShape interface {
	localBounds() ggraph.Bounds
}

// orientedShape marks node types whose local box is a valid OBB.
type orientedShape interface {
	localShape
	orientedBounds()
}

// positionKeys feed the transform.
var positionKeys = map[string]bool{
	"x": true, "y": true, "scaleX": true, "scaleY": true, "angle": true,
}

// commonShapeKeys change the geometry of every simple node.
var commonShapeKeys = map[string]bool{
	"dx": true, "dy": true, "lineWidth": true, "stroke": true,
}

// shapeKeys are the type-specific geometry keys.
var shapeKeys = map[Type]map[string]bool{
	TypeCircle: {"radius": true},
	TypeArc:    {"innerRadius": true, "outerRadius": true, "startAngle": true, "endAngle": true},
	TypeRect:   {"width": true, "height": true},
	TypeLine:   {"points": true, "curveType": true, "closePath": true, "stepT": true},
	TypeText: {
		"text": true, "fontSize": true, "fontFamily": true, "fontWeight": true,
		"fontStyle": true, "textAlign": true, "textBaseline": true,
		"direction": true, "maxLineWidth": true, "ellipsis": true,
	},
}

// Graphic is the state shared by all node types: the attribute bag, dirty
// tags, the memoized transform and bounds, and visual states.
type Graphic struct {
	typ   Type
	self  shape
	attrs bag
	theme *theme.Theme
	host  *Glyph

	tags   Tag
	matrix ggraph.Matrix
	aabb   ggraph.Bounds
	obb    *ggraph.OBB

	states     map[string]ggraph.Attrs
	stateProxy func(name string, states []string) ggraph.Attrs
	current    []string
	normal     map[string]normalValue

	// version counts applied attribute changes, shapeGen shape
	// invalidations, computed bounds recomputations.
	version  uint64
	shapeGen uint64
	computed uint64
}

func (g *Graphic) init(typ Type, attrs ggraph.Attrs, self shape) {
	g.typ = typ
	g.self = self
	g.attrs = newBag(attrs)
	g.tags = tagAll
}

// Type returns the node type.
func (g *Graphic) Type() Type { return g.typ }

// Base returns g. It lets code holding a Node reach the shared state.
func (g *Graphic) Base() *Graphic { return g }

// Host returns the glyph the node is attached to, or nil.
func (g *Graphic) Host() *Glyph { return g.host }

// Tags returns the pending dirty tags.
func (g *Graphic) Tags() Tag { return g.tags }

// Theme returns the theme the node resolves defaults from. A node inside
// a glyph without its own theme uses the glyph's.
func (g *Graphic) Theme() *theme.Theme {
	if g.theme == nil && g.host != nil {
		return g.host.Theme()
	}
	if g.theme == nil {
		return theme.Default()
	}
	return g.theme
}

// OwnTheme returns the theme set on this node itself, or nil.
func (g *Graphic) OwnTheme() *theme.Theme { return g.theme }

// SetTheme sets the node's theme. Nil restores the default.
func (g *Graphic) SetTheme(t *theme.Theme) {
	g.theme = t
	g.markDirty(tagAll)
}

// Attribute returns the explicit value for key, reading through to the
// host glyph's bag when the node does not set it.
func (g *Graphic) Attribute(key string) (any, bool) {
	return g.attrs.get(key)
}

// OwnAttributes returns a copy of the values set on this node only.
func (g *Graphic) OwnAttributes() ggraph.Attrs {
	return g.attrs.own.Clone()
}

// Attributes returns a copy of the explicit values visible to this node,
// including those read through from a host glyph.
func (g *Graphic) Attributes() ggraph.Attrs {
	return g.attrs.flatten()
}

// SetAttribute sets one attribute.
func (g *Graphic) SetAttribute(key string, value any) {
	g.SetAttributes(ggraph.Attrs{key: value})
}

// SetAttributes sets several attributes. Only keys whose value changes
// invalidate derived state.
func (g *Graphic) SetAttributes(attrs ggraph.Attrs) {
	changes := make(map[string]normalValue, len(attrs))
	for k, v := range attrs {
		changes[k] = normalValue{value: v, ok: true}
	}
	g.apply(changes)
}

// apply writes or deletes own attributes and invalidates on change.
func (g *Graphic) apply(changes map[string]normalValue) {
	var changed []string
	for k, nv := range changes {
		old, had := g.attrs.own[k]
		switch {
		case !nv.ok && !had:
			continue
		case !nv.ok:
			delete(g.attrs.own, k)
		case had && sameScalar(old, nv.value):
			continue
		default:
			if g.attrs.own == nil {
				g.attrs.own = ggraph.Attrs{}
			}
			g.attrs.own[k] = nv.value
		}
		changed = append(changed, k)
	}
	if len(changed) == 0 {
		return
	}
	g.version++
	g.self.invalidate(changed)
}

// sameScalar reports whether two attribute values are equal scalars.
// Slices, maps and pointers may have been mutated in place by the caller,
// so setting one again always counts as a change.
func sameScalar(a, b any) bool {
	switch a.(type) {
	case bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return a == b
	}
	return false
}

// invalidate sets the tags implied by a set of changed keys.
func (g *Graphic) invalidate(keys []string) {
	var t Tag
	for _, k := range keys {
		switch {
		case positionKeys[k]:
			t |= TagPosition | TagBounds
		case commonShapeKeys[k], shapeKeys[g.typ][k]:
			t |= TagShapeAndBounds | TagBounds
		}
	}
	if t != 0 {
		g.markDirty(t)
	}
}

// markDirty sets tags and propagates bounds staleness to the host glyph.
func (g *Graphic) markDirty(t Tag) {
	g.tags |= t
	if t&TagShapeAndBounds != 0 {
		g.shapeGen++
	}
	if t&(TagShapeAndBounds|TagPosition|TagBounds) != 0 {
		g.obb = nil
		if g.host != nil {
			g.host.markDirty(TagBounds)
		}
	}
}

// Value resolves key against the node's theme: explicit value, then the
// theme default. The hard-coded fallback is the caller's.
func (g *Graphic) Value(key string) (any, bool) {
	return g.Resolve(nil).Value(key)
}

// Float resolves a numeric attribute.
func (g *Graphic) Float(key string, fallback float64) float64 {
	return g.Resolve(nil).Float(key, fallback)
}

// String resolves a string attribute.
func (g *Graphic) String(key, fallback string) string {
	return g.Resolve(nil).String(key, fallback)
}

// Bool resolves a boolean attribute.
func (g *Graphic) Bool(key string, fallback bool) bool {
	return g.Resolve(nil).Bool(key, fallback)
}

// Visible reports the resolved visible attribute.
func (g *Graphic) Visible() bool {
	return g.Bool("visible", true)
}

// PickMode returns the resolved pick mode.
func (g *Graphic) PickMode() string {
	return g.String("pickMode", PickAccurate)
}

// Valid reports whether the node has renderable geometry.
func (g *Graphic) Valid() bool {
	return g.self.valid()
}

// Transform returns the node's matrix T(x,y)·R(angle)·S(scaleX,scaleY).
func (g *Graphic) Transform() ggraph.Matrix {
	if g.tags&TagPosition != 0 {
		g.matrix = ggraph.Compose(
			g.Float("x", 0), g.Float("y", 0),
			g.Float("scaleX", 1), g.Float("scaleY", 1),
			g.Float("angle", 0),
		)
		g.tags &^= TagPosition
	}
	return g.matrix
}

// AABBBounds returns the world-space axis-aligned bounds, recomputing
// them only when a dirty tag is set.
func (g *Graphic) AABBBounds() ggraph.Bounds {
	if g.tags&(TagShapeAndBounds|TagBounds) == 0 {
		return g.aabb
	}
	switch s := g.self.(type) {
	case interface{ computeAABB() ggraph.Bounds }:
		g.aabb = s.computeAABB()
	case localShape:
		g.aabb = s.localBounds().Transform(g.Transform())
	default:
		g.aabb = ggraph.EmptyBounds()
	}
	g.tags &^= TagShapeAndBounds | TagBounds
	g.computed++
	return g.aabb
}

// OBBBounds returns the oriented bounds: the local box placed by the
// node's transform. Types without a meaningful local box return an
// *UnsupportedError.
func (g *Graphic) OBBBounds() (ggraph.OBB, error) {
	o, ok := g.self.(orientedShape)
	if !ok {
		return ggraph.OBB{}, &UnsupportedError{Type: g.typ, Op: "OBBBounds"}
	}
	if g.obb == nil {
		g.obb = &ggraph.OBB{Local: o.localBounds(), Matrix: g.Transform()}
	}
	return *g.obb, nil
}

// Translate moves the node by (dx, dy).
func (g *Graphic) Translate(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	g.setPosition(ggraph.Attrs{
		"x": g.Float("x", 0) + dx,
		"y": g.Float("y", 0) + dy,
	})
}

// TranslateTo moves the node to (x, y).
func (g *Graphic) TranslateTo(x, y float64) {
	g.setPosition(ggraph.Attrs{"x": x, "y": y})
}

// Scale multiplies the node's scale factors.
func (g *Graphic) Scale(sx, sy float64) {
	g.setPosition(ggraph.Attrs{
		"scaleX": g.Float("scaleX", 1) * sx,
		"scaleY": g.Float("scaleY", 1) * sy,
	})
}

// ScaleTo sets the node's scale factors.
func (g *Graphic) ScaleTo(sx, sy float64) {
	g.setPosition(ggraph.Attrs{"scaleX": sx, "scaleY": sy})
}

// Rotate adds angle radians to the node's rotation.
func (g *Graphic) Rotate(angle float64) {
	if angle == 0 {
		return
	}
	g.setPosition(ggraph.Attrs{"angle": g.Float("angle", 0) + angle})
}

// RotateTo sets the node's rotation in radians.
func (g *Graphic) RotateTo(angle float64) {
	g.setPosition(ggraph.Attrs{"angle": angle})
}

// setPosition writes transform attributes without the attribute hook;
// glyphs invalidate their children from their own transform methods.
func (g *Graphic) setPosition(attrs ggraph.Attrs) {
	if g.attrs.own == nil {
		g.attrs.own = ggraph.Attrs{}
	}
	for k, v := range attrs {
		g.attrs.own[k] = v
	}
	g.version++
	g.markDirty(TagPosition | TagBounds)
}

func (g *Graphic) cloneInto(dst *Graphic) {
	dst.theme = g.theme
	dst.states = g.states
	dst.stateProxy = g.stateProxy
}

// strokeOutset is half the line width when a stroke is set.
func (g *Graphic) strokeOutset() float64 {
	v, _ := g.Value("stroke")
	if !PaintSet(v) {
		return 0
	}
	return math.Max(0, g.Float("lineWidth", 1)) / 2
}

// PaintSet reports whether a fill or stroke attribute value requests
// painting: true, a non-empty color string, or any other paint value.
func PaintSet(v any) bool {
	switch p := v.(type) {
	case nil:
		return false
	case bool:
		return p
	case string:
		return p != "" && p != "none"
	}
	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
