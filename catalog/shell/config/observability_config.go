package config

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName identifies the catalog in telemetry.
const ServiceName = "librarian"

const shutdownTimeout = 5 * time.Second

// ObservabilityProviders holds the OpenTelemetry providers installed as globals.
type ObservabilityProviders struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	Resource       *resource.Resource
}

// ObservabilityOption adds an exporter or reader to the providers.
type ObservabilityOption func(*observabilitySetup)

type observabilitySetup struct {
	spanExporters []trace.SpanExporter
	metricReaders []metric.Reader
	version       string
}

// WithSpanExporter batches finished spans to exporter.
func WithSpanExporter(exporter trace.SpanExporter) ObservabilityOption {
	return func(s *observabilitySetup) {
		s.spanExporters = append(s.spanExporters, exporter)
	}
}

// WithMetricReader registers reader with the meter provider.
func WithMetricReader(reader metric.Reader) ObservabilityOption {
	return func(s *observabilitySetup) {
		s.metricReaders = append(s.metricReaders, reader)
	}
}

// WithServiceVersion sets the service.version resource attribute.
func WithServiceVersion(version string) ObservabilityOption {
	return func(s *observabilitySetup) {
		s.version = version
	}
}

// NewObservabilityProviders creates the tracer and meter providers and sets them as the
// OpenTelemetry globals together with the W3C trace context propagator.
func NewObservabilityProviders(ctx context.Context, options ...ObservabilityOption) (*ObservabilityProviders, error) {
	setup := observabilitySetup{version: "dev"}
	for _, option := range options {
		option(&setup)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(ServiceName),
			semconv.ServiceVersionKey.String(setup.version),
		),
	)
	if err != nil {
		return nil, err
	}

	traceOptions := []trace.TracerProviderOption{trace.WithResource(res)}
	for _, exporter := range setup.spanExporters {
		traceOptions = append(traceOptions, trace.WithBatcher(exporter))
	}

	metricOptions := []metric.Option{metric.WithResource(res)}
	for _, reader := range setup.metricReaders {
		metricOptions = append(metricOptions, metric.WithReader(reader))
	}

	tracerProvider := trace.NewTracerProvider(traceOptions...)
	meterProvider := metric.NewMeterProvider(metricOptions...)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &ObservabilityProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		Resource:       res,
	}, nil
}

// Shutdown flushes and stops both providers.
func (p *ObservabilityProviders) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(p.TracerProvider.Shutdown(ctx), p.MeterProvider.Shutdown(ctx))
}
