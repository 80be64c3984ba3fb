// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package graphic

import "github.com/gogpu/ggraph"

// bag is a node's own attributes plus an optional read-through parent.
// Lookups check own first and fall back to the parent. The parent is
// never written through a child.
type bag struct {
	own    ggraph.Attrs
	parent *bag
}

func newBag(attrs ggraph.Attrs) bag {
	return bag{own: attrs.Clone()}
}

func (b *bag) get(key string) (any, bool) {
	if v, ok := b.own[key]; ok {
		return v, true
	}
	if b.parent != nil {
		return b.parent.get(key)
	}
	return nil, false
}

// flatten returns the merged view, own values winning.
func (b *bag) flatten() ggraph.Attrs {
	var out ggraph.Attrs
	if b.parent != nil {
		out = b.parent.flatten()
	} else {
		out = make(ggraph.Attrs, len(b.own))
	}
	for k, v := range b.own {
		out[k] = v
	}
	return out
}
