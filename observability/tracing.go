package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "remoting-server"

// TracingConfig selects where command spans are exported to.
type TracingConfig struct {
	// OTLPEndpoint is the OTLP/gRPC collector address, e.g. "localhost:4317".
	// Tracing is disabled (a no-op tracer is installed) if empty.
	OTLPEndpoint string
	ServiceName  string
}

// InitTracing installs a global TracerProvider exporting spans over
// OTLP/gRPC, or a no-op provider if cfg.OTLPEndpoint is empty. The
// returned shutdown func flushes and closes the exporter; callers defer
// it during graceful shutdown.
func InitTracing(ctx context.Context, cfg TracingConfig) (shutdown func(context.Context) error, err error) {
	if cfg.OTLPEndpoint == "" {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(attribute.String("service.name", cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// StartCommandSpan opens a span named for the command serial being
// executed. Callers end the returned span once Execute returns.
func StartCommandSpan(ctx context.Context, serial string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "remoting.command."+serial)
}
