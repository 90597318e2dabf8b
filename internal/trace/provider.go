// Package trace exports counter animation runs as OpenTelemetry spans.
package trace

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for spans emitted by paymaker.
const TracerName = "paymaker/counter"

// Provider wraps an SDK tracer provider exporting over OTLP/HTTP.
// A nil *Provider is valid and disabled.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider creates an OTLP/HTTP provider for endpoint.
// Returns nil, nil when endpoint is empty (tracing disabled).
func NewProvider(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return nil, nil
	}
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create otlp exporter for %s", endpoint)
	}
	return newProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

// newProvider builds a Provider around an arbitrary span processor option.
func newProvider(processor sdktrace.TracerProviderOption, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "paymaker"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return &Provider{
		tp: sdktrace.NewTracerProvider(processor, sdktrace.WithResource(res)),
	}
}

// Tracer returns the paymaker tracer, or nil when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return nil
	}
	return p.tp.Tracer(TracerName)
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
