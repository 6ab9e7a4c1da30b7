// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package oneof provides value typed tagged unions over a closed set of alternatives.
//
// Go has no variadic type parameters so there is one container per number
// of alternatives, [Of1] through [Of4]. Each holds exactly one of its
// alternatives, or nothing, inline and without heap allocations. The zero
// value of every container is empty.
//
// # Construction
//
//	var u oneof.Of2[int, rune] // empty
//	u = u.With1(5)            // holds an int
//	u.Set2('c')               // holds a rune
//	u.Emplace1(func(n *int) { *n = 42 })
//
// # Dispatch
//
// Exactly one handler is invoked per call, chosen by the active alternative:
//
//	u.View(
//	    func(n int) { fmt.Println("int", n) },
//	    func(r rune) { fmt.Println("rune", r) },
//	)
//
//	s := oneof.Match2(u,
//	    strconv.Itoa,
//	    func(r rune) string { return string(r) },
//	    func(oneof.Empty) string { return "empty" },
//	)
//
// A single generic function can serve as every handler. Inside it
// [Is] and [IsOneOf2] through [IsOneOf4] select behaviour per alternative:
//
//	func describe[T any](v T) string {
//	    if oneof.IsOneOf2[T, int, rune]() {
//	        return fmt.Sprint("int or rune: ", v)
//	    }
//	    return fmt.Sprint("other: ", v)
//	}
//
//	oneof.Match2(u, describe[int], describe[rune], describe[oneof.Empty])
//
// # Releasing resources
//
// Dropping an alternative with Clear or by overwriting the container leaves
// it to the garbage collector. Alternatives owning resources can be released
// with Close and Assign, which call the alternative's own Close method.
package oneof

//go:generate go run ./cmd/oneofgen --output .
