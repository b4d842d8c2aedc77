package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CameronXie/coffee-api/internal/api/rest"
	"github.com/CameronXie/coffee-api/internal/api/rest/handler"
	"github.com/CameronXie/coffee-api/internal/api/rest/middleware"
	"github.com/CameronXie/coffee-api/internal/seeder"
	"github.com/CameronXie/coffee-api/internal/version"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 10 * time.Second
	WriteTimeout      = 20 * time.Second
	IdleTimeout       = 60 * time.Second
	ShutdownTimeout   = 15 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger.Info("api_starting", "version", version.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("api_failed", "error", err)
		stop()
		os.Exit(1)
	}

	logger.Info("api_stopped")
}

// run wires the store, seed data and HTTP server, and blocks until ctx is done or serving fails.
func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		return fmt.Errorf("load_config: %w", err)
	}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store_init: %w", err)
	}
	defer closeStore()
	logger.Info("store_ready", "driver", cfg.StoreDriver)

	if cfg.SeedData {
		if _, err := seeder.NewSeeder(repo, logger).Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	server := &http.Server{
		Addr: fmt.Sprintf(":%s", cfg.Port),
		Handler: rest.NewMuxWithHandlers(&rest.RouterConfig{
			CoffeeHandler:     handler.NewCoffeeHandler(repo, logger),
			RequestMiddleware: middleware.NewRequestLogger(logger),
		}),
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api_listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		logger.Info("api_shutting_down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
