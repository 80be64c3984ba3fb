// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
)

// ErrProviderSealed is returned when a contribution is registered after
// the provider has been read.
var ErrProviderSealed = errors.New("render: contribution provider is sealed")

// Phase is the point in the draw procedure where a contribution runs.
type Phase uint8

const (
	// BeforeFillStroke runs after the path is built, before shadow and
	// painting.
	BeforeFillStroke Phase = iota

	// AfterFillStroke runs after fill and stroke.
	AfterFillStroke
)

func (p Phase) String() string {
	if p == AfterFillStroke {
		return "afterFillStroke"
	}
	return "beforeFillStroke"
}

// Flags are the fill and stroke decisions of one draw.
type Flags struct {
	// DoFill and DoStroke report whether a fill or stroke is requested,
	// visible or not. Interceptors run whenever these are set.
	DoFill   bool
	DoStroke bool

	// FillVisible and StrokeVisible report whether painting would show.
	FillVisible   bool
	StrokeVisible bool
}

// Shape is everything a contribution sees during one draw of one node.
// The current path on Surface is the node's shape.
type Shape struct {
	Node    graphic.Node
	Surface surface.Context
	X, Y    float64
	Flags   Flags
	Attrs   graphic.Resolver
	Draw    *DrawContext

	// Fill and Stroke are the interceptors of a pick pass, or nil.
	Fill   Interceptor
	Stroke Interceptor
}

// Picking reports whether the draw is a pick pass.
func (s *Shape) Picking() bool {
	return s.Fill != nil || s.Stroke != nil
}

// Contribution is a reusable step of the draw procedure, bound to a
// phase. Contributions are shared by every draw and must not keep
// per-draw state.
type Contribution interface {
	// Name identifies the contribution in logs.
	Name() string

	// Phase selects when the contribution runs.
	Phase() Phase

	// Order sorts contributions within a phase; higher runs first.
	Order() int

	// DrawShape runs the contribution.
	DrawShape(s *Shape)
}

// Provider maps node types to their contributions. Registration happens
// at setup; the first read seals the provider and sorts each list once.
type Provider struct {
	mu       sync.Mutex
	byType   map[graphic.Type][]Contribution
	resolved map[graphic.Type][]Contribution
	sealed   bool
}

// NewProvider creates an empty provider.
func NewProvider() *Provider {
	return &Provider{
		byType:   make(map[graphic.Type][]Contribution),
		resolved: make(map[graphic.Type][]Contribution),
	}
}

// Register adds contributions for a node type.
func (p *Provider) Register(typ graphic.Type, cs ...Contribution) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sealed {
		return ErrProviderSealed
	}
	p.byType[typ] = append(p.byType[typ], cs...)
	return nil
}

// Contributions returns the contributions for typ sorted by descending
// order, ties in registration order. The slice is shared and must not be
// modified.
func (p *Provider) Contributions(typ graphic.Type) []Contribution {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sealed = true
	if cs, ok := p.resolved[typ]; ok {
		return cs
	}
	cs := slices.Clone(p.byType[typ])
	slices.SortStableFunc(cs, func(a, b Contribution) int {
		return cmp.Compare(b.Order(), a.Order())
	})
	p.resolved[typ] = cs
	return cs
}

// DefaultProvider returns a provider with the built-in contributions
// registered for every simple node type.
func DefaultProvider() *Provider {
	p := NewProvider()
	for _, typ := range []graphic.Type{
		graphic.TypeCircle, graphic.TypeArc, graphic.TypeRect,
		graphic.TypeLine, graphic.TypeText,
	} {
		_ = p.Register(typ, Background{}, Texture{}, Border{}) // fresh provider is unsealed
	}
	return p
}
