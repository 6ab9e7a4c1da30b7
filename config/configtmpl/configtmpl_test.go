// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package configtmpl

import (
	"io"
	"strings"
	"testing"

	"github.com/z5labs/oneof/config"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	t.Run("will render env and default", func(t *testing.T) {
		t.Run("if the environment variable is set", func(t *testing.T) {
			t.Setenv("ONEOFGEN_TEST_PACKAGE", "variant")

			r := config.RenderTemplate(
				strings.NewReader(`package: {{ env "ONEOFGEN_TEST_PACKAGE" | default "oneof" }}`),
				Options()...,
			)
			b, err := io.ReadAll(r)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "package: variant", string(b)) {
				return
			}
		})

		t.Run("if the environment variable is not set", func(t *testing.T) {
			r := config.RenderTemplate(
				strings.NewReader(`package: {{ env "ONEOFGEN_TEST_UNSET" | default "oneof" }}`),
				Options()...,
			)
			b, err := io.ReadAll(r)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "package: oneof", string(b)) {
				return
			}
		})
	})
}
