package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/httpapi"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to start catalog: %w", err)
	}
	defer func() {
		if closeErr := a.close(); closeErr != nil {
			a.logger.Error("releasing resources failed", "error", closeErr.Error())
		}
	}()

	server := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewServer(a.catalog,
			httpapi.WithLogger(a.logger),
			httpapi.WithAllowedOrigins(cfg.CORSOrigins...),
		).Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverDone := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", cfg.HTTPAddr)
		serverDone <- server.ListenAndServe()
	}()

	select {
	case err := <-serverDone:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		a.logger.Info("shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("http server stopped")

	return nil
}
