package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.9.0"
	"google.golang.org/grpc/credentials"

	"github.com/duka-labs/inventory-catalog/internal/config"
)

type CleanupFunc func(ctx context.Context) error

// InitTracer sets up the global tracer provider and propagators. When no
// collector URL is configured it only installs the propagators, so trace
// context still flows through logs and outgoing headers.
func InitTracer(ctx context.Context, cfg config.Otel) (CleanupFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.CollectorURL == "" {
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.CollectorURL),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}
	if cfg.CollectorAuth != "" {
		opts = append(opts, otlptracegrpc.WithHeaders(map[string]string{
			"Authorization": cfg.CollectorAuth,
		}))
	}

	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}

	attrs := []resource.Option{
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
		),
	}
	if cfg.K8sPodName != "" {
		attrs = append(attrs, resource.WithAttributes(
			semconv.K8SPodNameKey.String(cfg.K8sPodName),
			semconv.K8SNamespaceNameKey.String(cfg.K8sNamespace),
		))
	}

	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.TraceIDRatio))),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}
