package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/aegraph"
	httpAdapter "github.com/aretw0/aegraph/pkg/adapters/http"
	"github.com/aretw0/aegraph/pkg/observability"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Starts the engine in stateless server mode, exposing a JSON API over HTTP.
Rule events stream on GET /events and Prometheus metrics on GET /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		metrics := observability.NewMetrics()
		streams := httpAdapter.NewStreamManager()
		engine, err := newEngine(cmd, metrics, aegraph.WithLifecycleHooks(streams.Hooks()))
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr: ":" + port,
			Handler: httpAdapter.NewHandler(engine,
				httpAdapter.WithStreams(streams),
				httpAdapter.WithMetrics(metrics.Handler()),
				httpAdapter.WithLogger(logger),
			),
		}
		// Shutdown waits for active handlers; /events ones only end when told.
		srv.RegisterOnShutdown(streams.Close)

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting aegraph server", "address", srv.Addr, "library", libraryName(cmd))
			serverErrors <- srv.ListenAndServe()
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
			logger.Info("shutdown signal received")

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
			logger.Info("aegraph server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}

func libraryName(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir
	}
	return "built-in"
}
