// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package curve

import (
	"strconv"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/cache"
)

// Generator memoizes Generate results keyed by the input points, kind
// and options. It is safe for concurrent use. Returned SegContexts are
// shared between callers and must not be modified.
type Generator struct {
	cache *cache.Cache[string, *SegContext]
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	capacity int
}

// WithCapacity sets the per-shard cache capacity.
func WithCapacity(n int) GeneratorOption {
	return func(c *generatorConfig) {
		c.capacity = n
	}
}

// NewGenerator creates a caching generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := generatorConfig{capacity: cache.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cache: cache.New[string, *SegContext](cfg.capacity, cache.StringHasher)}
}

// Generate returns the cached segments for the input, generating them on
// first use. Degenerate input is not cached and returns nil.
func (g *Generator) Generate(points []ggraph.Point, kind Kind, opts ...Option) *SegContext {
	var p params
	for _, opt := range opts {
		opt(&p)
	}
	n := len(points)
	if p.start != nil {
		n++
	}
	if n < 2 {
		return nil
	}
	key := cacheKey(points, kind, p)
	return g.cache.GetOrCreate(key, func() *SegContext {
		return Generate(points, kind, opts...)
	})
}

// Stats reports cache statistics.
func (g *Generator) Stats() cache.Stats {
	return g.cache.Stats()
}

// Clear drops all cached segments.
func (g *Generator) Clear() {
	g.cache.Clear()
}

func cacheKey(points []ggraph.Point, kind Kind, p params) string {
	buf := make([]byte, 0, 16+len(points)*24)
	buf = append(buf, kind...)
	if p.hasStepT {
		buf = append(buf, '@')
		buf = strconv.AppendFloat(buf, p.stepT, 'g', -1, 64)
	}
	if p.start != nil {
		buf = append(buf, '^')
		buf = appendPoint(buf, *p.start)
	}
	for _, pt := range points {
		buf = append(buf, '|')
		buf = appendPoint(buf, pt)
	}
	return string(buf)
}

func appendPoint(buf []byte, p ggraph.Point) []byte {
	buf = strconv.AppendFloat(buf, p.X, 'g', -1, 64)
	buf = append(buf, ',')
	return strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
}
