// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package otelconfig builds OpenTelemetry tracer providers.
package otelconfig

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerProvider is a trace.TracerProvider which must be shut down
// once tracing is done so buffered spans get exported.
type TracerProvider interface {
	trace.TracerProvider

	Shutdown(context.Context) error
}

// Initializer builds a [TracerProvider].
type Initializer interface {
	Init() (TracerProvider, error)
}

// LocalConfig configures the [Initializer] returned by [Local].
type LocalConfig struct {
	ServiceName string
	Out         io.Writer
	PrettyPrint bool
}

// LocalOption configures [Local].
type LocalOption func(*LocalConfig)

// ServiceName sets the service.name resource attribute.
func ServiceName(name string) LocalOption {
	return func(lc *LocalConfig) {
		lc.ServiceName = name
	}
}

// Out sets where spans are written to. The default is os.Stdout.
func Out(w io.Writer) LocalOption {
	return func(lc *LocalConfig) {
		lc.Out = w
	}
}

// PrettyPrint indents every exported span.
func PrettyPrint() LocalOption {
	return func(lc *LocalConfig) {
		lc.PrettyPrint = true
	}
}

// Local returns an [Initializer] which writes spans as JSON.
func Local(opts ...LocalOption) Initializer {
	cfg := LocalConfig{
		Out: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Init implements the [Initializer] interface.
func (cfg LocalConfig) Init() (TracerProvider, error) {
	exportOpts := []stdouttrace.Option{
		stdouttrace.WithWriter(cfg.Out),
	}
	if cfg.PrettyPrint {
		exportOpts = append(exportOpts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(exportOpts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		context.Background(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return tp, nil
}
