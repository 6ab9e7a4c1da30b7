// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/z5labs/oneof/internal/ioutil"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a config document.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf picks the [Format] of a config file by its extension.
// Anything other than .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// UnknownFormatError occurs when a [Doc] is given a [Format] it cannot decode.
type UnknownFormatError struct {
	Format Format
}

// Error implements the error interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown config format: %q", string(e.Format))
}

// SyntaxError occurs when a document is not valid in its [Format].
type SyntaxError struct {
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s config: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e SyntaxError) Unwrap() error {
	return e.Cause
}

// Doc is a [Source] decoding a whole document in one [Format].
type Doc struct {
	r      io.Reader
	format Format
}

// Decode returns a [Source] which reads r to the end, closing it if it
// is an io.Closer, and applies the top level mapping it holds. An empty
// document applies nothing.
func Decode(r io.Reader, format Format) Doc {
	return Doc{r: r, format: format}
}

// Apply implements the [Source] interface.
func (d Doc) Apply(store Store) error {
	b, err := ioutil.ReadAll(d.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	switch d.format {
	case YAML:
		err = yaml.Unmarshal(b, &m)
	case JSON:
		err = decodeJSON(b, &m)
	default:
		return UnknownFormatError{Format: d.format}
	}
	if err != nil {
		return SyntaxError{Format: d.format, Cause: err}
	}
	return Map(m).Apply(store)
}

// decodeJSON keeps numbers as json.Number so fractional values are
// rejected when decoded into integer fields instead of being truncated.
func decodeJSON(b []byte, m *map[string]any) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec.Decode(m)
}
