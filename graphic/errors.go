// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import "github.com/gogpu/ggraph"

// UnsupportedError is returned when a node type does not implement an
// operation. It matches ggraph.ErrUnsupported with errors.Is.
type UnsupportedError struct {
	Type Type
	Op   string
}

func (e *UnsupportedError) Error() string {
	return "graphic: " + string(e.Type) + " does not support " + e.Op
}

func (e *UnsupportedError) Unwrap() error {
	return ggraph.ErrUnsupported
}
