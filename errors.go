// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import "errors"

// Sentinel errors shared by ggraph and its sub-packages.
var (
	// ErrUnsupported is returned when a node type does not support an
	// operation, such as oriented bounds on a composite node.
	ErrUnsupported = errors.New("ggraph: unsupported operation")
)
