// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package ioutil reads config documents whose readers may need closing.
package ioutil

import (
	"fmt"
	"io"

	"github.com/z5labs/oneof/internal/try"
)

// CloseError is recorded when a reader fails to close after [ReadAll].
type CloseError struct {
	Cause error
}

// Error implements the [error] interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close reader: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e CloseError) Unwrap() error {
	return e.Cause
}

// ReadAll reads r until EOF and then closes it if it is an [io.Closer],
// even when reading failed. A close failure is a [CloseError] joined
// with any read error.
func ReadAll(r io.Reader) (b []byte, err error) {
	defer try.Close(&err, closer{r})
	return io.ReadAll(r)
}

type closer struct {
	r io.Reader
}

func (c closer) Close() error {
	rc, ok := c.r.(io.Closer)
	if !ok {
		return nil
	}
	if err := rc.Close(); err != nil {
		return CloseError{Cause: err}
	}
	return nil
}
