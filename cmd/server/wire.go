package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/exclusive-events/assets"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/clients/asset"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/clients/simulated"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/content"
	adapthttp "github.com/jsamuelsen11/exclusive-events/internal/adapters/http"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/view"
	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/app/session"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/health"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/httpclient"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Names of the two simulated form backends in the container.
const (
	bookingSubmitter = "submitter.booking"
	contactSubmitter = "submitter.contact"
)

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Content.
	do.Provide(injector, func(_ do.Injector) (*content.Loader, error) {
		return content.NewLoaderFromConfig(&cfg.Content), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.CatalogService, error) {
		loader := do.MustInvoke[*content.Loader](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		diag := logging.Diagnostics(logger, cfg.App.Environment)
		return app.NewCatalogService(loader, cfg.Content.MaxWorkers, logger, diag, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogService, error) {
		return do.MustInvoke[*app.CatalogService](i), nil
	})

	// Outbound: simulated form backend and the asset host probe.
	do.ProvideNamed(injector, bookingSubmitter, func(_ do.Injector) (ports.Submitter, error) {
		return simulated.New(cfg.Submission.Booking, simulated.WithLogger(logger)), nil
	})

	do.ProvideNamed(injector, contactSubmitter, func(_ do.Injector) (ports.Submitter, error) {
		return simulated.New(cfg.Submission.Contact, simulated.WithLogger(logger)), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "asset-host", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AssetProbe, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return asset.NewProbe(client, cfg.Site.PDF.ProbeTTL, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Visitor sessions.
	do.Provide(injector, func(i do.Injector) (*session.Store, error) {
		booking := do.MustInvokeNamed[ports.Submitter](i, bookingSubmitter)
		contact := do.MustInvokeNamed[ports.Submitter](i, contactSubmitter)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		newVisitor := func(id string) *session.Visitor {
			return session.NewVisitor(id, booking, contact,
				app.WithLogger(logger),
				app.WithMetrics(metrics),
			)
		}
		return session.NewStore(cfg.Session.IdleTimeout, newVisitor,
			session.WithMaxSessions(cfg.Session.MaxSessions),
			session.WithLogger(logger),
		), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(_ do.Injector) (*view.Renderer, error) {
		return view.New(&cfg.Site, view.WithLogger(logger))
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PageHandler, error) {
		return handlers.NewPageHandler(
			do.MustInvoke[ports.CatalogService](i),
			do.MustInvoke[*view.Renderer](i),
			do.MustInvoke[ports.AssetProbe](i),
			&cfg.Site,
			handlers.WithReload(cfg.Content.Reload),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		catalogSvc := do.MustInvoke[ports.CatalogService](i)
		store := do.MustInvoke[*session.Store](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		csrf, err := middleware.CSRF(cfg.Security, logger)
		if err != nil {
			return nil, fmt.Errorf("csrf middleware: %w", err)
		}

		h := adapthttp.Handlers{
			Page:        do.MustInvoke[*handlers.PageHandler](i),
			Booking:     handlers.NewBookingHandler(catalogSvc),
			Contact:     handlers.NewContactHandler(),
			Testimonial: handlers.NewTestimonialHandler(catalogSvc),
			Health:      do.MustInvoke[*handlers.HealthHandler](i),
		}
		routes := adapthttp.Routes{
			Static: assets.Static(),
			PDF:    cfg.Site.PDF,
			// CSRF runs first so a rejected post never starts a session.
			Visitor: middleware.Chain(
				csrf,
				middleware.Session(store, cfg.Session.CookieName, !cfg.Security.PlaintextHTTP),
			),
		}

		return adapthttp.NewRouter(h, routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.SecurityHeaders(),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger, adapthttp.WithDrainTimeout(serverShutdownTimeout)), nil
	})
}
