package telemetry

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

// ServiceName is reported as the service.name resource attribute.
const ServiceName = "minishell"

// ShutdownFunc flushes and stops an installed provider.
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting spans over OTLP/HTTP to
// endpoint (host:port). The exporter connects lazily, so an unreachable collector
// does not fail the shell.
func Setup(ctx context.Context, endpoint string, insecure bool) (ShutdownFunc, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
	}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrTelemetrySetupFailed, err.Error()), "endpoint", endpoint)
	}

	return Install(sdktrace.WithBatcher(exporter)), nil
}

// Install sets a global tracer provider built from opts and returns its shutdown.
func Install(opts ...sdktrace.TracerProviderOption) ShutdownFunc {
	opts = append(opts, sdktrace.WithResource(resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
	)))
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
