// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// PickContext is a geometry-only context for hit testing. Fill and
// Stroke paint nothing; only the path and hit tests matter.
type PickContext struct {
	base
}

// NewPickContext creates a pick context of the given size. The size only
// matters to callers that clip hit tests to the viewport.
func NewPickContext(width, height int) *PickContext {
	return &PickContext{base: newBase(width, height)}
}

// Fill is a no-op.
func (c *PickContext) Fill() {}

// Stroke is a no-op.
func (c *PickContext) Stroke() {}

// Reset clears the path and the state stack and restores default state.
func (c *PickContext) Reset() {
	c.path.Clear()
	c.stack = c.stack[:0]
	c.st = defaultState()
}

var _ Context = (*PickContext)(nil)
