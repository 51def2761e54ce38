// Package oteladapters provides OpenTelemetry implementations of the eventjournal observability interfaces:
//   - MetricsCollector over go.opentelemetry.io/otel/metric
//   - TracingCollector over go.opentelemetry.io/otel/trace
//   - SlogBridgeLogger over the otelslog bridge, and OTelLogger over go.opentelemetry.io/otel/log
//
// The catalog's command and query wrappers, and the journal engines, accept these directly.
package oteladapters
