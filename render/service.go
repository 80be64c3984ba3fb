// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
	"github.com/gogpu/ggraph/theme"
)

// NodeError reports a node whose draw failed. The draw loop recovers
// the failure and continues with the next node.
type NodeError struct {
	Node graphic.Node
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("render: draw %s: %v", e.Node.Type(), e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// ErrRendererPanic wraps a panic recovered while drawing a node.
var ErrRendererPanic = errors.New("render: renderer panicked")

// Option configures a Service.
type Option func(*Service)

// WithTheme sets the theme that supplies defaults for every draw. It is
// layered over theme.Default.
func WithTheme(t *theme.Theme) Option {
	return func(s *Service) {
		s.theme = theme.Merge(theme.Default(), t)
	}
}

// WithProvider sets the contribution provider used by the built-in
// renderers. The default is DefaultProvider.
func WithProvider(p *Provider) Option {
	return func(s *Service) {
		s.provider = p
	}
}

// WithRenderer adds a renderer, replacing any built-in renderer for the
// same type.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		s.extra = append(s.extra, r)
	}
}

// Service owns the renderers and draws node lists onto surfaces.
//
// A Service is immutable after NewService and may be shared. Drawing
// mutates nodes' caches, so one node tree must not be drawn or picked
// concurrently.
type Service struct {
	theme     *theme.Theme
	provider  *Provider
	extra     []Renderer
	renderers map[graphic.Type]Renderer
}

// NewService creates a render service with renderers for every built-in
// node type.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.provider == nil {
		s.provider = DefaultProvider()
	}

	s.renderers = make(map[graphic.Type]Renderer)
	for _, r := range []Renderer{
		NewCircleRenderer(s.provider),
		NewArcRenderer(s.provider),
		NewRectRenderer(s.provider),
		NewLineRenderer(s.provider),
		NewTextRenderer(s.provider),
		NewGlyphRenderer(),
	} {
		s.renderers[r.Type()] = r
	}
	for _, r := range s.extra {
		s.renderers[r.Type()] = r
	}
	return s
}

// Theme returns the service theme, or nil when nodes use their own.
func (s *Service) Theme() *theme.Theme {
	return s.theme
}

// Renderer returns the renderer for typ.
func (s *Service) Renderer(typ graphic.Type) (Renderer, bool) {
	r, ok := s.renderers[typ]
	return r, ok
}

// Params returns the draw parameters of this service.
func (s *Service) Params() Params {
	return Params{Theme: s.theme}
}

// DrawNode draws one node with its type's renderer. Unknown types are
// skipped.
func (s *Service) DrawNode(n graphic.Node, dc *DrawContext, p Params) {
	r, ok := s.renderers[n.Type()]
	if !ok {
		ggraph.Logger().Debug("render: no renderer", "type", n.Type())
		return
	}
	r.Draw(n, dc, p)
}

// Render draws nodes in order onto surf. A node whose renderer or
// contributions panic is skipped and reported as a *NodeError; the
// returned error joins all of them. Render stops between nodes when ctx
// is done.
func (s *Service) Render(ctx context.Context, surf surface.Context, nodes ...graphic.Node) error {
	dc := &DrawContext{Surface: surf, Service: s, Base: surf.Transform()}
	p := s.Params()

	var errs []error
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.drawIsolated(n, dc, p); err != nil {
			ggraph.Logger().Warn("render: node failed", "type", n.Type(), "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Service) drawIsolated(n graphic.Node, dc *DrawContext, p Params) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &NodeError{Node: n, Err: fmt.Errorf("%w: %w", ErrRendererPanic, cause)}
		}
	}()
	s.DrawNode(n, dc, p)
	return nil
}
