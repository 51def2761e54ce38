package service

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

type options struct {
	clock            func() time.Time
	logger           shell.Logger
	contextualLogger shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	retryOptions     []shell.RetryOption
}

// Option configures a Catalog.
type Option func(*options)

// WithClock replaces time.Now as the source of operation timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogging sets the basic logger for all handlers and the event recorder.
func WithLogging(logger shell.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContextualLogging sets the contextual logger for all handlers and the event recorder.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(o *options) {
		o.contextualLogger = logger
	}
}

// WithMetrics sets the metrics collector for all handlers and the event recorder.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = collector
	}
}

// WithTracing sets the tracing collector for all handlers.
func WithTracing(collector shell.TracingCollector) Option {
	return func(o *options) {
		o.tracingCollector = collector
	}
}

// WithRetryOptions sets the retry configuration of all command handlers.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(o *options) {
		o.retryOptions = opts
	}
}
