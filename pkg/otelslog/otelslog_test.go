// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otelslog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type logRecord struct {
	Message string `json:"msg"`
	OTel    struct {
		TraceID string `json:"trace_id"`
		SpanID  string `json:"span_id"`
	} `json:"otel"`
}

func TestHandler_Handle(t *testing.T) {
	t.Run("will not add trace id and span id", func(t *testing.T) {
		t.Run("if the span context is invalid", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			log.InfoContext(ctx, "test")

			var record logRecord
			err := json.Unmarshal(buf.Bytes(), &record)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "test", record.Message) {
				return
			}
			if !assert.Empty(t, record.OTel.TraceID) {
				return
			}
			if !assert.Empty(t, record.OTel.SpanID) {
				return
			}
		})
	})

	t.Run("will add trace id and span id", func(t *testing.T) {
		t.Run("if the span context is valid", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{})).With("gen", "oneof")

			tp := sdktrace.NewTracerProvider()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			spanCtx, span := tp.Tracer("otelslog").Start(ctx, "test")
			defer span.End()

			log.InfoContext(spanCtx, "test")

			var record logRecord
			err := json.Unmarshal(buf.Bytes(), &record)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, span.SpanContext().TraceID().String(), record.OTel.TraceID) {
				t.Log(buf.String())
				return
			}
			if !assert.Equal(t, span.SpanContext().SpanID().String(), record.OTel.SpanID) {
				t.Log(buf.String())
				return
			}
		})
	})

	t.Run("will record the log as a span event", func(t *testing.T) {
		t.Run("if RecordEvents is set and the span is recording", func(t *testing.T) {
			var buf bytes.Buffer
			log := New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}), RecordEvents()).WithGroup("file")

			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

			spanCtx, span := tp.Tracer("otelslog").Start(context.Background(), "render")
			log.InfoContext(spanCtx, "rendered file")
			span.End()

			spans := recorder.Ended()
			if !assert.Len(t, spans, 1) {
				return
			}
			events := spans[0].Events()
			if !assert.Len(t, events, 1) {
				return
			}
			if !assert.Equal(t, "rendered file", events[0].Name) {
				return
			}
		})
	})
}
