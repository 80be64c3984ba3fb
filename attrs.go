// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggraph

import "maps"

// Attrs is a sparse attribute bag. A missing key means "not set" and is
// resolved against a theme default by the consumer.
type Attrs map[string]any

// Clone returns a shallow copy of a. A nil bag clones to an empty one.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	maps.Copy(out, a)
	return out
}

// Float returns the numeric value stored under key.
func (a Attrs) Float(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// String returns the string value stored under key.
func (a Attrs) String(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// Bool returns the boolean value stored under key.
func (a Attrs) Bool(key string) (bool, bool) {
	b, ok := a[key].(bool)
	return b, ok
}

// ToFloat converts any Go numeric type to float64. Values decoded from
// YAML (int) and TOML (int64) land here as well as literals.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
