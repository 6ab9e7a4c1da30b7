// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package oneof

import (
	"io"

	"github.com/z5labs/oneof/internal/try"
)

// release closes the value stored at v if either the value or
// its address implements io.Closer.
func release[T any](v *T) (err error) {
	if _, ok := any(v).(io.Closer); ok {
		try.Close(&err, v)
		return
	}
	try.Close(&err, *v)
	return
}
