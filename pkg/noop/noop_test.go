// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package noop

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogHandler(t *testing.T) {
	t.Run("will never be enabled", func(t *testing.T) {
		var h slog.Handler = LogHandler{}
		for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
			if !assert.False(t, h.Enabled(context.Background(), lvl)) {
				return
			}
		}
	})

	t.Run("will stay a LogHandler", func(t *testing.T) {
		t.Run("if attrs or groups are added", func(t *testing.T) {
			var h slog.Handler = LogHandler{}
			h = h.WithAttrs([]slog.Attr{slog.String("a", "b")}).WithGroup("gen")
			if !assert.IsType(t, LogHandler{}, h) {
				return
			}

			err := h.Handle(context.Background(), slog.Record{})
			if !assert.Nil(t, err) {
				return
			}
		})
	})
}
