// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package oneof

// Index identifies which alternative a container currently holds.
// Alternatives are numbered from 1 in type parameter order and
// the zero Index, [None], means the container is empty.
type Index uint8

// None is the [Index] of an empty container.
const None Index = 0

// Empty is the value handed to empty handlers. It is distinct
// from every alternative a container may be instantiated with.
type Empty struct{}

// Is reports whether T is exactly C or exactly *C. The pointer is
// stripped so handlers receiving *T from the mutable dispatch forms
// can ask the same question as handlers receiving T.
//
// No conversion or interface satisfaction is considered, so a named
// type never matches its underlying type.
//
// Because of the stripped pointer, Is cannot tell C and *C apart. For a
// container holding both, such as Of2[int, *int], use [IsExact].
func Is[T, C any]() bool {
	// A nil *T boxed in an interface is pointer shaped and never allocates.
	p := any((*T)(nil))
	if _, ok := p.(*C); ok {
		return true
	}
	_, ok := p.(**C)
	return ok
}

// IsExact reports whether T is exactly C. Unlike [Is] no pointer is stripped.
func IsExact[T, C any]() bool {
	_, ok := any((*T)(nil)).(*C)
	return ok
}

// IsOneOf2 reports whether T is one of C1 or C2, as defined by [Is].
func IsOneOf2[T, C1, C2 any]() bool {
	return Is[T, C1]() || Is[T, C2]()
}

// IsOneOf3 reports whether T is one of C1, C2 or C3, as defined by [Is].
func IsOneOf3[T, C1, C2, C3 any]() bool {
	return Is[T, C1]() || Is[T, C2]() || Is[T, C3]()
}

// IsOneOf4 reports whether T is one of C1 through C4, as defined by [Is].
func IsOneOf4[T, C1, C2, C3, C4 any]() bool {
	return Is[T, C1]() || Is[T, C2]() || Is[T, C3]() || Is[T, C4]()
}
