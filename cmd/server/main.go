// Package main serves the Isaac & Alyam site. It loads the configuration
// named by APP_PROFILE, wires the dependency graph with samber/do, loads the
// content catalog once and serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/content"
	adapthttp "github.com/jsamuelsen11/exclusive-events/internal/adapters/http"
	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/app/session"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/httpclient"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	startupLoadTimeout    = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	providers := &telemetry.Providers{}
	if cfg.Telemetry.Enabled {
		providers, err = telemetry.Setup(ctx, telemetry.Settings{
			ServiceName: cfg.Telemetry.ServiceName,
			Exporter:    cfg.Telemetry.Exporter,
			Endpoint:    cfg.Telemetry.Endpoint,
		})
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerDependencies(injector, cfg, logger)

	if err := loadCatalog(ctx, do.MustInvoke[*app.CatalogService](injector)); err != nil {
		return err
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*content.Loader](injector))
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	store := do.MustInvoke[*session.Store](injector)
	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		store.Run(ctx, cfg.Session.SweepInterval)
	}()

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	serveErr := server.Run(sigCtx)

	// Visitors and their pending timers go with the store.
	stop()
	<-sweepDone

	if serveErr != nil {
		return fmt.Errorf("server failed: %w", serveErr)
	}
	logger.Info("shutdown complete")
	return nil
}

// loadCatalog fills the catalog before the first request is served.
func loadCatalog(ctx context.Context, catalog *app.CatalogService) error {
	ctx, cancel := context.WithTimeout(ctx, startupLoadTimeout)
	defer cancel()

	if err := catalog.Reload(ctx); err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	return nil
}
