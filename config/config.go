// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config layers key value sources, such as a config file and
// the command line flags that override it, and decodes the result into
// a struct.
package config

import (
	"fmt"

	"github.com/z5labs/oneof/config/key"

	"github.com/mitchellh/mapstructure"
)

// Store receives the values of a [Source].
type Store interface {
	Set(key.Keyer, any) error
}

// Source writes its values into a [Store].
type Source interface {
	Apply(Store) error
}

// SourceError occurs when one of the sources passed to [Read] fails.
type SourceError struct {
	// Index is the position of the failing source in the call to [Read].
	Index int
	Cause error
}

// Error implements the error interface.
func (e SourceError) Error() string {
	return fmt.Sprintf("config source %d: %s", e.Index, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e SourceError) Unwrap() error {
	return e.Cause
}

// Manager holds the merged values of every source passed to [Read].
type Manager struct {
	values Map
}

// Read applies srcs in order to a single [Map], so a value set by
// a later source replaces the one set by an earlier source.
func Read(srcs ...Source) (*Manager, error) {
	values := make(Map)
	for i, src := range srcs {
		if err := src.Apply(values); err != nil {
			return nil, SourceError{Index: i, Cause: err}
		}
	}
	return &Manager{values: values}, nil
}

// DecodeError occurs when the merged values do not fit the target struct.
type DecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("failed to decode config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DecodeError) Unwrap() error {
	return e.Cause
}

// Unmarshal decodes the merged values into the struct v points to,
// matching keys against "config" struct tags. A key which no field
// claims is an error, so a misspelled key in a file is reported.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "config",
		ErrorUnused: true,
		Result:      v,
	})
	if err != nil {
		return DecodeError{Cause: err}
	}
	if err := dec.Decode(map[string]any(m.values)); err != nil {
		return DecodeError{Cause: err}
	}
	return nil
}
