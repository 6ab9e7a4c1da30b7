// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
)

type templateOptions struct {
	left, right string
	funcs       template.FuncMap
}

// TemplateOption configures [RenderTemplate].
type TemplateOption func(*templateOptions)

// TemplateFunc makes f callable from the template as name.
func TemplateFunc(name string, f any) TemplateOption {
	return func(o *templateOptions) {
		o.funcs[name] = f
	}
}

// TemplateDelims replaces the {{ and }} action delimiters.
// An empty string keeps the default for that side.
func TemplateDelims(left, right string) TemplateOption {
	return func(o *templateOptions) {
		o.left = left
		o.right = right
	}
}

// TemplateError occurs when a config template fails to parse or execute.
type TemplateError struct {
	// Op is either "parse" or "execute".
	Op    string
	Cause error
}

// Error implements the error interface.
func (e TemplateError) Error() string {
	return fmt.Sprintf("failed to %s config template: %s", e.Op, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TemplateError) Unwrap() error {
	return e.Cause
}

// TemplateReader reads the output of a text/template whose source is
// read from another io.Reader. Nothing is rendered until the first Read.
type TemplateReader struct {
	src  io.Reader
	opts templateOptions

	out *bytes.Reader
	err error
}

// RenderTemplate returns a [TemplateReader] rendering the template read from src.
func RenderTemplate(src io.Reader, opts ...TemplateOption) *TemplateReader {
	tr := &TemplateReader{
		src: src,
		opts: templateOptions{
			funcs: make(template.FuncMap),
		},
	}
	for _, opt := range opts {
		opt(&tr.opts)
	}
	return tr
}

// Read implements the io.Reader interface.
func (tr *TemplateReader) Read(b []byte) (int, error) {
	if tr.out == nil && tr.err == nil {
		tr.out, tr.err = tr.render()
	}
	if tr.err != nil {
		return 0, tr.err
	}
	return tr.out.Read(b)
}

// Close closes the template source if it is an io.Closer.
func (tr *TemplateReader) Close() error {
	if c, ok := tr.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (tr *TemplateReader) render() (*bytes.Reader, error) {
	text, err := io.ReadAll(tr.src)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("config").
		Delims(tr.opts.left, tr.opts.right).
		Funcs(tr.opts.funcs).
		Parse(string(text))
	if err != nil {
		return nil, TemplateError{Op: "parse", Cause: err}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, nil); err != nil {
		return nil, TemplateError{Op: "execute", Cause: err}
	}
	return bytes.NewReader(out.Bytes()), nil
}
