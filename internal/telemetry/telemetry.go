// Package telemetry provides OpenTelemetry tracing of play sessions,
// exported to Honeycomb over OTLP/HTTP.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "dungeondelve"
	serviceVersion = "0.2.0"

	// DefaultEndpoint is Honeycomb's OTLP/HTTP ingest host.
	DefaultEndpoint = "api.honeycomb.io"
)

// Options configures trace export.
type Options struct {
	APIKey    string // Honeycomb team key. Export is disabled when empty.
	Dataset   string
	SessionID string // Recorded on every span of the session
	Endpoint  string // host[:port], DefaultEndpoint when empty
	Insecure  bool   // Plain HTTP, for a local collector
}

// Enabled reports whether traces will be exported.
func (o Options) Enabled() bool {
	return o.APIKey != ""
}

// headers returns the Honeycomb authentication headers.
func (o Options) headers() map[string]string {
	h := map[string]string{"x-honeycomb-team": o.APIKey}
	if o.Dataset != "" {
		h["x-honeycomb-dataset"] = o.Dataset
	}
	return h
}

// Setup installs the global tracer provider and returns a shutdown function
// that flushes pending spans; call it on application exit. Without an API
// key a no-op provider is installed and shutdown does nothing.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	clientOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithHeaders(opts.headers()),
	}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := newResource(ctx, opts.SessionID)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. It is built standalone rather than
// merged with resource.Default() to avoid schema URL conflicts.
func newResource(ctx context.Context, sessionID string) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("session.id", sessionID),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
