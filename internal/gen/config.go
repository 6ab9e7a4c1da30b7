// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gen

import (
	"fmt"
	"go/token"
)

// MaxArity is the widest container which can be generated.
const MaxArity = 8

// Config controls what [Generate] renders.
type Config struct {
	// Package is the name of the package the files are generated for.
	Package string `config:"package"`

	// MaxArity is the widest container generated. Containers of
	// every arity from 1 up to and including MaxArity are rendered.
	MaxArity int `config:"maxArity"`

	// Output is the directory generated files are written to.
	Output string `config:"output"`
}

// DefaultConfig returns the configuration used to generate the oneof package.
func DefaultConfig() Config {
	return Config{
		Package:  "oneof",
		MaxArity: 4,
		Output:   ".",
	}
}

// InvalidArityError occurs when an arity outside of 1..[MaxArity] is requested.
type InvalidArityError struct {
	Arity int
}

// Error implements the error interface.
func (e InvalidArityError) Error() string {
	return fmt.Sprintf("arity must be between 1 and %d: %d", MaxArity, e.Arity)
}

// MissingPackageError occurs when no package name is configured.
type MissingPackageError struct{}

// Error implements the error interface.
func (MissingPackageError) Error() string {
	return "package name must be set"
}

// InvalidPackageError occurs when the package name is not a Go identifier.
type InvalidPackageError struct {
	Package string
}

// Error implements the error interface.
func (e InvalidPackageError) Error() string {
	return fmt.Sprintf("package name is not a valid identifier: %q", e.Package)
}

// Validate reports the first problem found with cfg.
func (cfg Config) Validate() error {
	if cfg.Package == "" {
		return MissingPackageError{}
	}
	if !token.IsIdentifier(cfg.Package) {
		return InvalidPackageError{Package: cfg.Package}
	}
	return validateArity(cfg.MaxArity)
}

func validateArity(n int) error {
	if n < 1 || n > MaxArity {
		return InvalidArityError{Arity: n}
	}
	return nil
}
