// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/jsamuelsen11/exclusive-events/internal/app/fanout"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// CatalogService loads the content resources, validates and filters them,
// and publishes the result as an immutable catalog. Content failures never
// reach the caller: each resource degrades to its fallback document.
type CatalogService struct {
	loader     ports.ContentLoader
	maxWorkers int
	logger     *slog.Logger
	// diag receives content diagnostics. It discards everything outside
	// development.
	diag    *slog.Logger
	metrics *telemetry.Metrics

	current atomic.Pointer[catalog.Catalog]
}

// NewCatalogService creates a CatalogService serving catalog.Empty until the
// first Reload. metrics may be nil.
func NewCatalogService(
	loader ports.ContentLoader,
	maxWorkers int,
	logger, diag *slog.Logger,
	metrics *telemetry.Metrics,
) *CatalogService {
	s := &CatalogService{
		loader:     loader,
		maxWorkers: maxWorkers,
		logger:     logger,
		diag:       diag,
		metrics:    metrics,
	}
	s.current.Store(catalog.Empty())
	return s
}

// Catalog returns the current catalog.
func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.current.Load()
}

// Reload reads every resource concurrently and swaps in the rebuilt catalog.
// When ctx is canceled the previous catalog is kept.
func (s *CatalogService) Reload(ctx context.Context) error {
	loaded, err := fanout.Map(ctx, s.maxWorkers, catalog.Resources, s.LoadOrDefault)
	if err != nil {
		s.logger.WarnContext(ctx, "content reload canceled", slog.Any("error", err))
		return err
	}

	docs := make(map[string]any, len(loaded))
	for i, doc := range loaded {
		docs[catalog.Resources[i].Name] = doc
	}

	cat := catalog.Build(docs, func(resource string) domain.DropFunc {
		return func(index int, _ any) {
			s.metrics.RecordDropped(ctx, resource, 1)
			s.diag.WarnContext(ctx, "invalid content entity dropped",
				slog.String("resource", resource),
				slog.Int("index", index),
			)
		}
	})
	s.current.Store(cat)

	s.logger.InfoContext(ctx, "content loaded",
		slog.Int("services", len(cat.Services)),
		slog.Int("testimonials", len(cat.Testimonials)),
		slog.Int("references", len(cat.References)),
		slog.Int("news", len(cat.News)),
		slog.Int("slots", len(cat.Calendar.Slots)),
	)
	return nil
}

// LoadOrDefault loads res and substitutes its fallback document on any
// failure, so the result always has the resource's expected shape.
func (s *CatalogService) LoadOrDefault(ctx context.Context, res catalog.Resource) any {
	doc, err := s.loader.Load(ctx, res)
	if err == nil {
		return doc
	}

	kind := domain.LoadErrorKind("unknown")
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		kind = loadErr.Kind
	}

	s.metrics.RecordFallback(ctx, res.Name)
	s.diag.WarnContext(ctx, "content unavailable, using fallback",
		slog.String("resource", res.Name),
		slog.String("file", res.File),
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
	return res.Fallback()
}
