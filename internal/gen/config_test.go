// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("will return a MissingPackageError", func(t *testing.T) {
		t.Run("if the package is empty", func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Package = ""

			err := cfg.Validate()

			var merr MissingPackageError
			if !assert.ErrorAs(t, err, &merr) {
				return
			}
			if !assert.NotEmpty(t, merr.Error()) {
				return
			}
		})
	})

	t.Run("will return an InvalidPackageError", func(t *testing.T) {
		t.Run("if the package is not an identifier", func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Package = "one-of"

			err := cfg.Validate()

			var perr InvalidPackageError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "one-of", perr.Package) {
				return
			}
		})
	})

	t.Run("will return an InvalidArityError", func(t *testing.T) {
		testCases := []struct {
			Name  string
			Arity int
		}{
			{Name: "if the arity is zero", Arity: 0},
			{Name: "if the arity is negative", Arity: -1},
			{Name: "if the arity is too wide", Arity: MaxArity + 1},
		}

		for _, testCase := range testCases {
			t.Run(testCase.Name, func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.MaxArity = testCase.Arity

				err := cfg.Validate()

				var aerr InvalidArityError
				if !assert.ErrorAs(t, err, &aerr) {
					return
				}
				if !assert.Equal(t, testCase.Arity, aerr.Arity) {
					return
				}
				if !assert.NotEmpty(t, aerr.Error()) {
					return
				}
			})
		}
	})

	t.Run("will return nil", func(t *testing.T) {
		t.Run("if the default config is used", func(t *testing.T) {
			err := DefaultConfig().Validate()
			if !assert.Nil(t, err) {
				return
			}
		})

		t.Run("if the widest arity is used", func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MaxArity = MaxArity

			err := cfg.Validate()
			if !assert.Nil(t, err) {
				return
			}
		})
	})
}
