package service

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/observable"
)

func wrapCommandHandler[C shell.Command, R any](
	handler shell.CoreCommandHandler[C, R],
	o options,
) (*observable.CommandWrapper[C, R], error) {

	return observable.NewCommandWrapper(
		handler,
		observable.WithCommandMetrics[C, R](o.metricsCollector),
		observable.WithCommandTracing[C, R](o.tracingCollector),
		observable.WithCommandContextualLogging[C, R](o.contextualLogger),
		observable.WithCommandLogging[C, R](o.logger),
	)
}

func wrapQueryHandler[Q shell.Query, R any](
	handler shell.CoreQueryHandler[Q, R],
	o options,
) (*observable.QueryWrapper[Q, R], error) {

	return observable.NewQueryWrapper(
		handler,
		observable.WithQueryMetrics[Q, R](o.metricsCollector),
		observable.WithQueryTracing[Q, R](o.tracingCollector),
		observable.WithQueryContextualLogging[Q, R](o.contextualLogger),
		observable.WithQueryLogging[Q, R](o.logger),
	)
}
