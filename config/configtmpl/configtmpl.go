// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package configtmpl provides template functions for use in config source templates.
package configtmpl

import (
	"os"
	"reflect"

	"github.com/z5labs/oneof/config"
)

// Env returns the value of the environment variable name, or an empty
// string when it is not set. Use [Default] to tell the two apart.
func Env(name string) string {
	return os.Getenv(name)
}

// Default returns v unless it is nil or its type's zero value, in which
// case def is returned. The argument order allows piping, e.g.
// {{ env "ONEOFGEN_OUTPUT" | default "." }}.
func Default(def, v any) any {
	if v == nil || reflect.ValueOf(v).IsZero() {
		return def
	}
	return v
}

// Options registers every function in this package with a
// [config.RenderTemplate] under its lower cased name.
func Options() []config.TemplateOption {
	return []config.TemplateOption{
		config.TemplateFunc("env", Env),
		config.TemplateFunc("default", Default),
	}
}
