// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"

	"github.com/z5labs/oneof/config/key"
)

// Map is a tree of config values. A nested map[string]any holds the values
// below a dotted key path, e.g. {"trace": {"enabled": true}} for
// "trace.enabled". Map is both a [Source] and a [Store].
type Map map[string]any

// Apply implements the [Source] interface by setting every leaf of m
// on store under its full key path.
func (m Map) Apply(store Store) error {
	return m.apply(store, nil)
}

func (m Map) apply(store Store, prefix key.Chain) error {
	for name, v := range m {
		// copy so sibling paths never share a backing array
		path := make(key.Chain, len(prefix), len(prefix)+1)
		copy(path, prefix)
		path = append(path, key.Name(name))

		if sub, ok := v.(map[string]any); ok {
			if err := Map(sub).apply(store, path); err != nil {
				return err
			}
			continue
		}
		if err := store.Set(path, v); err != nil {
			return err
		}
	}
	return nil
}

// Set implements the [Store] interface. Maps along the key path are
// created when missing.
func (m Map) Set(k key.Keyer, v any) error {
	path, err := names(k)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return EmptyKeyError{Value: v}
	}

	node := m
	last := len(path) - 1
	for i, name := range path[:last] {
		existing, ok := node[name]
		if !ok {
			child := make(map[string]any)
			node[name] = child
			node = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return NotAMapError{Path: strings.Join(path[:i+1], ".")}
		}
		node = child
	}
	node[path[last]] = v
	return nil
}

// names flattens k into the names along its path.
func names(k key.Keyer) ([]string, error) {
	switch x := k.(type) {
	case key.Name:
		return []string{string(x)}, nil
	case key.Chain:
		var path []string
		for _, sub := range x {
			ns, err := names(sub)
			if err != nil {
				return nil, err
			}
			path = append(path, ns...)
		}
		return path, nil
	}
	return nil, UnknownKeyerError{Keyer: k}
}

// UnknownKeyerError occurs when a value is set with a [key.Keyer]
// other than [key.Name] or [key.Chain].
type UnknownKeyerError struct {
	Keyer key.Keyer
}

// Error implements the error interface.
func (e UnknownKeyerError) Error() string {
	return fmt.Sprintf("unsupported key type %T: %s", e.Keyer, e.Keyer.Key())
}

// EmptyKeyError occurs when a value is set with a key path holding no names.
type EmptyKeyError struct {
	Value any
}

// Error implements the error interface.
func (e EmptyKeyError) Error() string {
	return fmt.Sprintf("cannot set %v without a key", e.Value)
}

// NotAMapError occurs when a key is nested below a path which already
// holds a plain value, e.g. setting "output.dir" when "output" is a string.
type NotAMapError struct {
	Path string
}

// Error implements the error interface.
func (e NotAMapError) Error() string {
	return fmt.Sprintf("config value at %s is not a map", e.Path)
}
