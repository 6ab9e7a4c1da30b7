// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package noop provides implementations which do nothing, for use as
// defaults when a caller does not configure one.
package noop

import (
	"context"
	"log/slog"
)

// LogHandler is an slog.Handler which drops every record.
type LogHandler struct{}

// Enabled implements the slog.Handler interface. It always reports false
// so loggers skip building records.
func (LogHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

// Handle implements the slog.Handler interface.
func (LogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

// WithAttrs implements the slog.Handler interface.
func (h LogHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

// WithGroup implements the slog.Handler interface.
func (h LogHandler) WithGroup(_ string) slog.Handler { return h }

