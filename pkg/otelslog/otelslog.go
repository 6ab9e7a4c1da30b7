// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package otelslog provides a OpenTelemetry aware slog.Handler implementation.
package otelslog

import (
	"context"
	"log/slog"

	"github.com/z5labs/oneof/pkg/slogfield"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a [Handler].
type Option func(*Handler)

// RecordEvents makes the [Handler] also add every record it handles
// as an event on the recording span found in the record context.
func RecordEvents() Option {
	return func(h *Handler) {
		h.events = true
	}
}

// Handler is an slog.Handler which correlates logs with traces by
// adding the Trace ID and Span ID of the active span to every record.
type Handler struct {
	slog   slog.Handler
	events bool
}

// NewHandler wraps h.
func NewHandler(h slog.Handler, opts ...Option) *Handler {
	handler := &Handler{slog: h}
	for _, opt := range opts {
		opt(handler)
	}
	return handler
}

// New provides a simple wrapper for slog.New(NewHandler(h, opts...)).
func New(h slog.Handler, opts ...Option) *slog.Logger {
	return slog.New(NewHandler(h, opts...))
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.slog.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	span := trace.SpanFromContext(ctx)
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() {
		return h.slog.Handle(ctx, record)
	}

	if h.events && span.IsRecording() {
		span.AddEvent(record.Message, trace.WithAttributes(
			attribute.String("level", record.Level.String()),
		))
	}

	r := record.Clone()
	r.AddAttrs(
		slog.Group(
			"otel",
			slogfield.String("trace_id", spanCtx.TraceID().String()),
			slogfield.String("span_id", spanCtx.SpanID().String()),
		),
	)
	return h.slog.Handle(ctx, r)
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{slog: h.slog.WithAttrs(attrs), events: h.events}
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{slog: h.slog.WithGroup(name), events: h.events}
}
