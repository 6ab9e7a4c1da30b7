// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for strongly typed keys in key value pairs.
package key

import (
	"strings"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Chain represents nested keys, outermost first.
type Chain []Keyer

// Key implements the [Keyer] interface. Nested keys are joined by a dot.
func (k Chain) Key() string {
	ss := make([]string, len(k))
	for i := range k {
		ss[i] = k[i].Key()
	}
	return strings.Join(ss, ".")
}

// Name represents a single key.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Parse splits a dotted path such as "gen.maxArity" into a [Chain].
// A path without dots is returned as a single [Name].
func Parse(path string) Keyer {
	parts := strings.Split(path, ".")
	if len(parts) == 1 {
		return Name(path)
	}
	chain := make(Chain, len(parts))
	for i, p := range parts {
		chain[i] = Name(p)
	}
	return chain
}
