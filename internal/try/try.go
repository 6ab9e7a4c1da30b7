// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides deferrable helpers which record a recovered panic
// or a failed Close in the error a function is already returning.
package try

import (
	"errors"
	"fmt"
	"io"
)

// PanicError holds the value a goroutine panicked with.
type PanicError struct {
	Value any
}

// Error implements the [error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error, so errors.Is
// sees through a panic(err).
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover must be deferred directly. A panic is recorded in err as a [PanicError].
func Recover(err *error) {
	if r := recover(); r != nil {
		record(err, PanicError{Value: r})
	}
}

// Close closes v if it is an [io.Closer] and records a failure in err.
// The close error is stored as is when err holds nothing yet.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if cerr := c.Close(); cerr != nil {
		record(err, cerr)
	}
}

// record keeps cause unwrapped unless err already holds an error,
// in which case both are joined.
func record(err *error, cause error) {
	if *err == nil {
		*err = cause
		return
	}
	*err = errors.Join(*err, cause)
}
