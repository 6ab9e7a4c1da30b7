// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gen

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed oneof.go.tmpl
var oneofTmpl string

var tmpl = template.Must(template.New("oneof").Parse(oneofTmpl))

// RenderError occurs when a container fails to render into valid Go source.
type RenderError struct {
	Arity int
	Cause error
}

// Error implements the error interface.
func (e RenderError) Error() string {
	return fmt.Sprintf("failed to render container of arity %d: %s", e.Arity, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e RenderError) Unwrap() error {
	return e.Cause
}

// FileName returns the name of the file holding the container of arity n.
func FileName(n int) string {
	return fmt.Sprintf("of%d.go", n)
}

type alt struct {
	K int
}

type tmplData struct {
	Package        string
	N              int
	Name           string
	Summary        string
	TypeParams     string
	Type           string
	Alts           []alt
	PtrHandlers    string
	ValueHandlers  string
	ResultHandlers string
}

func newTmplData(pkg string, n int) tmplData {
	alts := make([]alt, n)
	params := make([]string, n)
	ptrs := make([]string, n)
	values := make([]string, n)
	results := make([]string, n)
	for i := range alts {
		k := i + 1
		alts[i] = alt{K: k}
		params[i] = fmt.Sprintf("T%d", k)
		ptrs[i] = fmt.Sprintf("f%d func(*T%d)", k, k)
		values[i] = fmt.Sprintf("f%d func(T%d)", k, k)
		results[i] = fmt.Sprintf("f%d func(T%d) R", k, k)
	}

	name := fmt.Sprintf("Of%d", n)
	return tmplData{
		Package:        pkg,
		N:              n,
		Name:           name,
		Summary:        summary(params),
		TypeParams:     strings.Join(params, ", ") + " any",
		Type:           name + "[" + strings.Join(params, ", ") + "]",
		Alts:           alts,
		PtrHandlers:    strings.Join(ptrs, ", "),
		ValueHandlers:  strings.Join(values, ", "),
		ResultHandlers: strings.Join(results, ", "),
	}
}

func summary(params []string) string {
	if len(params) == 1 {
		return "a " + params[0]
	}
	last := len(params) - 1
	return "exactly one of " + strings.Join(params[:last], ", ") + " or " + params[last]
}

// Render returns the formatted Go source of the container of arity n.
func Render(ctx context.Context, cfg Config, n int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Package == "" {
		return nil, MissingPackageError{}
	}
	if err := validateArity(n); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, newTmplData(cfg.Package, n))
	if err != nil {
		return nil, RenderError{Arity: n, Cause: err}
	}

	src, err := imports.Process(FileName(n), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, RenderError{Arity: n, Cause: err}
	}
	return src, nil
}
