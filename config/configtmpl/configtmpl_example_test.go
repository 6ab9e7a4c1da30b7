// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package configtmpl

import (
	"fmt"
	"os"
)

func ExampleEnv() {
	os.Setenv("ONEOFGEN_EXAMPLE_PACKAGE", "union")
	defer os.Unsetenv("ONEOFGEN_EXAMPLE_PACKAGE")

	fmt.Println(Env("ONEOFGEN_EXAMPLE_PACKAGE"))
	// Output: union
}

func ExampleDefault() {
	fmt.Println(Default(".", "internal/union"))
	// Output: internal/union
}

func ExampleDefault_empty() {
	fmt.Println(Default(".", Env("ONEOFGEN_EXAMPLE_UNSET")))
	// Output: .
}

func ExampleDefault_zero() {
	var maxArity int
	fmt.Println(Default(4, maxArity))
	// Output: 4
}
