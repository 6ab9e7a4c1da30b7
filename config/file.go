// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"io"
	"io/fs"
	"strings"
)

// FileReaderOption configures a [FileReader].
type FileReaderOption func(*FileReader)

// AllowMissing makes a [FileReader] read as an empty document,
// instead of failing, when its file does not exist.
func AllowMissing() FileReaderOption {
	return func(r *FileReader) {
		r.optional = true
	}
}

// FileReader reads a config file which is opened on the first Read.
type FileReader struct {
	fsys     fs.FS
	name     string
	optional bool

	f   io.ReadCloser
	err error
}

// NewFileReader returns a [FileReader] for the file name in fsys.
func NewFileReader(fsys fs.FS, name string, opts ...FileReaderOption) *FileReader {
	r := &FileReader{
		fsys: fsys,
		name: name,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	if r.f == nil && r.err == nil {
		r.f, r.err = r.open()
	}
	if r.err != nil {
		return 0, r.err
	}
	return r.f.Read(b)
}

func (r *FileReader) open() (io.ReadCloser, error) {
	f, err := r.fsys.Open(r.name)
	if err == nil {
		return f, nil
	}
	if r.optional && errors.Is(err, fs.ErrNotExist) {
		return io.NopCloser(strings.NewReader("")), nil
	}
	return nil, err
}

// Close implements the io.Closer interface. Reading after Close
// fails with fs.ErrClosed.
func (r *FileReader) Close() error {
	f := r.f
	r.f, r.err = nil, fs.ErrClosed
	if f == nil {
		return nil
	}
	return f.Close()
}
