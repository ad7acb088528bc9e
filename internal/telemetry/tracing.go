// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of spans started by queuechart.
const TracerName = "github.com/petenewcomb/queuechart"

// ShutdownFunc flushes and releases a tracer provider.
type ShutdownFunc func(context.Context) error

// NewTracerProvider returns a provider that pretty prints finished spans to
// w, or a no-op provider if w is nil.
func NewTracerProvider(w io.Writer) (trace.TracerProvider, ShutdownFunc, error) {
	if w == nil {
		return trace.NewNoopTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		return nil, nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSyncer(exporter),
	)
	return tp, tp.Shutdown, nil
}
