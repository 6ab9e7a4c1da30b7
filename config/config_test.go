// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/z5labs/oneof/config/key"

	"github.com/stretchr/testify/assert"
)

type readFunc func([]byte) (int, error)

func (f readFunc) Read(b []byte) (int, error) {
	return f(b)
}

type storeFunc func(key.Keyer, any) error

func (f storeFunc) Set(k key.Keyer, v any) error {
	return f(k, v)
}

type sourceFunc func(Store) error

func (f sourceFunc) Apply(store Store) error {
	return f(store)
}

type genConfig struct {
	Package  string `config:"package"`
	MaxArity int    `config:"maxArity"`
	Output   string `config:"output"`
	Trace    struct {
		Enabled bool `config:"enabled"`
	} `config:"trace"`
}

func TestRead(t *testing.T) {
	t.Run("will return a SourceError", func(t *testing.T) {
		t.Run("if a source fails to apply", func(t *testing.T) {
			srcErr := errors.New("failed to apply")
			src := sourceFunc(func(s Store) error {
				return srcErr
			})

			_, err := Read(Map{"package": "oneof"}, src)

			var serr SourceError
			if !assert.ErrorAs(t, err, &serr) {
				return
			}
			if !assert.Equal(t, 1, serr.Index) {
				return
			}
			if !assert.ErrorIs(t, err, srcErr) {
				return
			}
			if !assert.NotEmpty(t, serr.Error()) {
				return
			}
		})
	})

	t.Run("will override earlier values", func(t *testing.T) {
		t.Run("if a later source sets the same key", func(t *testing.T) {
			m, err := Read(
				Decode(strings.NewReader("package: oneof\nmaxArity: 4\ntrace:\n  enabled: false"), YAML),
				Map{"maxArity": 2, "trace": map[string]any{"enabled": true}},
			)
			if !assert.Nil(t, err) {
				return
			}

			var cfg genConfig
			err = m.Unmarshal(&cfg)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "oneof", cfg.Package) {
				return
			}
			if !assert.Equal(t, 2, cfg.MaxArity) {
				return
			}
			if !assert.True(t, cfg.Trace.Enabled) {
				return
			}
		})
	})

	t.Run("will decode nothing", func(t *testing.T) {
		t.Run("if no sources are given", func(t *testing.T) {
			m, err := Read()
			if !assert.Nil(t, err) {
				return
			}

			var cfg genConfig
			err = m.Unmarshal(&cfg)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, genConfig{}, cfg) {
				return
			}
		})
	})
}

func TestManager_Unmarshal(t *testing.T) {
	t.Run("will return a DecodeError", func(t *testing.T) {
		testCases := []struct {
			Name   string
			Values Map
		}{
			{Name: "if a key matches no field", Values: Map{"maxarity": 4}},
			{Name: "if a value has the wrong type", Values: Map{"package": []any{"a", "b"}}},
			{Name: "if an integer field gets a fractional number", Values: Map{"maxArity": json.Number("2.5")}},
		}

		for _, testCase := range testCases {
			t.Run(testCase.Name, func(t *testing.T) {
				m, err := Read(testCase.Values)
				if !assert.Nil(t, err) {
					return
				}

				var cfg genConfig
				err = m.Unmarshal(&cfg)

				var derr DecodeError
				if !assert.ErrorAs(t, err, &derr) {
					return
				}
				if !assert.NotEmpty(t, derr.Error()) {
					return
				}
				if !assert.Error(t, derr.Unwrap()) {
					return
				}
			})
		}

		t.Run("if the target is not a pointer", func(t *testing.T) {
			m, err := Read()
			if !assert.Nil(t, err) {
				return
			}

			err = m.Unmarshal(genConfig{})

			var derr DecodeError
			if !assert.ErrorAs(t, err, &derr) {
				return
			}
		})
	})
}

func TestMap_Set(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the key chain is empty", func(t *testing.T) {
			m := make(Map)
			err := m.Set(key.Chain{}, 1)

			var kerr EmptyKeyError
			if !assert.ErrorAs(t, err, &kerr) {
				return
			}
			if !assert.NotEmpty(t, kerr.Error()) {
				return
			}
		})

		t.Run("if a key is nested under a non map value", func(t *testing.T) {
			m := Map{"trace": map[string]any{"exporter": "stdout"}}
			err := m.Set(key.Parse("trace.exporter.pretty"), true)

			var kerr NotAMapError
			if !assert.ErrorAs(t, err, &kerr) {
				return
			}
			if !assert.Equal(t, "trace.exporter", kerr.Path) {
				return
			}
			if !assert.Contains(t, kerr.Error(), "trace.exporter") {
				return
			}
		})

		t.Run("if the key.Keyer is unknown", func(t *testing.T) {
			m := make(Map)
			err := m.Set(unknownKey{}, 1)

			var kerr UnknownKeyerError
			if !assert.ErrorAs(t, err, &kerr) {
				return
			}
			if !assert.NotEmpty(t, kerr.Error()) {
				return
			}
		})
	})

	t.Run("will nest values", func(t *testing.T) {
		t.Run("if a key chain is used", func(t *testing.T) {
			m := make(Map)
			err := m.Set(key.Parse("trace.enabled"), true)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Map{"trace": map[string]any{"enabled": true}}, m) {
				return
			}
		})

		t.Run("if chains are nested in chains", func(t *testing.T) {
			m := Map{"trace": map[string]any{"enabled": true}}
			err := m.Set(key.Chain{key.Name("trace"), key.Parse("exporter.pretty")}, false)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Map{"trace": map[string]any{
				"enabled":  true,
				"exporter": map[string]any{"pretty": false},
			}}, m) {
				return
			}
		})
	})

	t.Run("will replace the value", func(t *testing.T) {
		t.Run("if the key is already set", func(t *testing.T) {
			m := Map{"maxArity": 4}
			err := m.Set(key.Name("maxArity"), 2)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Map{"maxArity": 2}, m) {
				return
			}
		})
	})
}

type unknownKey struct{}

func (unknownKey) Key() string { return "unknown" }

func TestMap_Apply(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the store fails to set a key", func(t *testing.T) {
			storeErr := errors.New("failed to set key")
			store := storeFunc(func(k key.Keyer, a any) error {
				return storeErr
			})

			err := Map{"trace": map[string]any{"enabled": true}}.Apply(store)
			if !assert.ErrorIs(t, err, storeErr) {
				return
			}
		})
	})

	t.Run("will set every leaf with its full key", func(t *testing.T) {
		got := make(map[string]any)
		store := storeFunc(func(k key.Keyer, a any) error {
			got[k.Key()] = a
			return nil
		})

		err := Map{
			"package": "oneof",
			"trace": map[string]any{
				"enabled": true,
				"exporter": map[string]any{
					"pretty": false,
				},
			},
		}.Apply(store)
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, map[string]any{
			"package":               "oneof",
			"trace.enabled":         true,
			"trace.exporter.pretty": false,
		}, got) {
			return
		}
	})
}

