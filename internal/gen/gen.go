// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gen renders the fixed arity containers of package oneof.
package gen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/z5labs/oneof/internal/try"
	"github.com/z5labs/oneof/pkg/noop"
	"github.com/z5labs/oneof/pkg/otelslog"
	"github.com/z5labs/oneof/pkg/slogfield"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Writer persists a generated file.
type Writer interface {
	WriteFile(ctx context.Context, name string, src []byte) error
}

// WriteError occurs when a [Writer] fails to persist a generated file.
type WriteError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e WriteError) Unwrap() error {
	return e.Cause
}

// DirWriter is a [Writer] which writes files into the directory it names.
type DirWriter string

// WriteFile implements the [Writer] interface.
func (dir DirWriter) WriteFile(_ context.Context, name string, src []byte) error {
	return os.WriteFile(filepath.Join(string(dir), name), src, 0o644)
}

type options struct {
	logHandler slog.Handler
}

// Option configures [Generate].
type Option func(*options)

// LogHandler sets the slog.Handler progress is logged to.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// Generate renders every container from arity 1 to cfg.MaxArity
// concurrently and hands each file to w. The first failure cancels the
// context seen by the other files and is returned once all of them return.
func Generate(ctx context.Context, cfg Config, w Writer, opts ...Option) error {
	o := &options{
		logHandler: noop.LogHandler{},
	}
	for _, opt := range opts {
		opt(o)
	}
	start := time.Now()
	log := otelslog.New(o.logHandler).With(slogfield.String("package", cfg.Package))

	spanCtx, span := otel.Tracer("gen").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("package", cfg.Package),
		attribute.Int("max_arity", cfg.MaxArity),
	))
	defer span.End()

	err := cfg.Validate()
	if err != nil {
		log.ErrorContext(spanCtx, "invalid config", slogfield.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	g, gctx := errgroup.WithContext(spanCtx)
	for n := 1; n <= cfg.MaxArity; n++ {
		g.Go(func() (err error) {
			defer try.Recover(&err)

			return generateFile(gctx, log, cfg, w, n)
		})
	}

	err = g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	log.InfoContext(
		spanCtx,
		"generated containers",
		slogfield.Int("files", cfg.MaxArity),
		slogfield.Duration("took", time.Since(start)),
	)
	return nil
}

func generateFile(ctx context.Context, log *slog.Logger, cfg Config, w Writer, n int) error {
	name := FileName(n)
	spanCtx, span := otel.Tracer("gen").Start(ctx, "generateFile", trace.WithAttributes(
		attribute.String("file", name),
		attribute.Int("arity", n),
	))
	defer span.End()

	src, err := Render(spanCtx, cfg, n)
	if err != nil {
		log.ErrorContext(spanCtx, "failed to render container", slogfield.String("file", name), slogfield.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = w.WriteFile(spanCtx, name, src)
	if err != nil {
		werr := WriteError{Name: name, Cause: err}
		log.ErrorContext(spanCtx, "failed to write container", slogfield.String("file", name), slogfield.Error(werr))
		span.RecordError(werr)
		span.SetStatus(codes.Error, werr.Error())
		return werr
	}

	log.InfoContext(spanCtx, "wrote container", slogfield.String("file", name), slogfield.Int("bytes", len(src)))
	return nil
}
