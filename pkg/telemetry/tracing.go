package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// Options configures the OTLP trace exporter.
type Options struct {
	// Endpoint is either a base URL such as "http://collector:4318" or a bare
	// "host:port".
	Endpoint    string
	ServiceName string
	// Insecure applies to a bare host:port only; a URL carries its own scheme.
	Insecure bool
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Setup installs a global tracer provider exporting to an OTLP/HTTP endpoint.
// When no endpoint is configured the global no-op provider is kept and the
// returned shutdown is a no-op.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if opts.Endpoint == "" {
		log.Info().Msg("tracing disabled: no OTLP endpoint configured")
		return func(context.Context) error { return nil }, nil
	}

	exporterOpts, err := exporterOptions(opts)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(opts.ServiceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	log.Info().
		Str("endpoint", opts.Endpoint).
		Str("service_name", opts.ServiceName).
		Msg("tracing enabled")

	return provider.Shutdown, nil
}

// exporterOptions follows the OTEL_EXPORTER_OTLP_ENDPOINT convention: a base
// URL gets the /v1/traces signal path appended.
func exporterOptions(opts Options) ([]otlptracehttp.Option, error) {
	if !strings.Contains(opts.Endpoint, "://") {
		exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
		if opts.Insecure {
			exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
		}
		return exporterOpts, nil
	}

	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse otlp endpoint: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse otlp endpoint %q: missing host", opts.Endpoint)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/v1/traces"
	return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(u.String())}, nil
}
