package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/AntonStoeckl/library-catalog-go/catalog/service"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
	"github.com/AntonStoeckl/library-catalog-go/catalog/store"
	"github.com/AntonStoeckl/library-catalog-go/eventjournal/oteladapters"
)

const instrumentationName = "github.com/AntonStoeckl/library-catalog-go"

// app is the wired catalog of one librarian process.
type app struct {
	catalog *service.Catalog
	logger  *slog.Logger
	closers []func() error
}

func newApp(ctx context.Context, cfg config.Config, logOutput io.Writer) (*app, error) {
	logger, err := config.NewLogger(cfg, logOutput)
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger}

	journal, closeJournal, err := config.OpenJournal(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeJournal)

	catalogStore := store.New()
	if cfg.Seed {
		catalogStore = store.NewSeeded(time.Now())
	}

	options := []service.Option{service.WithLogging(logger)}

	if cfg.OTel {
		providers, providerErr := config.NewObservabilityProviders(ctx)
		if providerErr != nil {
			return nil, errors.Join(providerErr, a.close())
		}
		a.closers = append(a.closers, providers.Shutdown)

		options = append(options,
			service.WithContextualLogging(oteladapters.NewSlogBridgeLoggerWithHandler(logger.Handler())),
			service.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))),
			service.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))),
		)
	}

	catalog, err := service.New(catalogStore, journal, options...)
	if err != nil {
		return nil, errors.Join(err, a.close())
	}
	a.catalog = catalog

	logger.Info("catalog ready",
		"journal_driver", cfg.JournalDriver,
		"seeded", cfg.Seed,
		"otel", cfg.OTel,
	)

	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() error {
	var err error

	for i := len(a.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, a.closers[i]())
	}
	a.closers = nil

	return err
}
