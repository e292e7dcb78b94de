// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer wires the global otel provider based on the config. Precedence for
// exporters is gRPC endpoint, HTTP endpoint, then stdout when tracing is enabled
// without an endpoint. Disabled tracing installs a noop tracer.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("license-service")
		return t
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		cfg.Logger.Errorf("failed to create otel exporter, tracing disabled: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer("license-service")
		return t
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.tracer = tp.Tracer("license-service")
	return t
}

func newExporter(cfg *Config) (sdktrace.SpanExporter, error) {
	ctx := context.Background()

	if cfg.OtelGRPCEndpoint != "" {
		return otlptrace.New(ctx, otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		))
	}

	if cfg.OtelHTTPEndpoint != "" {
		return otlptrace.New(ctx, otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		))
	}

	return stdouttrace.New()
}

func NewNoopTracer() *Tracer {
	return &Tracer{tracer: noop.NewTracerProvider().Tracer("license-service")}
}
