package app_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
	"github.com/jsamuelsen11/exclusive-events/mocks"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func missing(res catalog.Resource) error {
	return &domain.LoadError{Resource: res.Name, Kind: domain.LoadMissing}
}

func TestCatalogService_StartsEmpty(t *testing.T) {
	t.Parallel()

	svc := app.NewCatalogService(mocks.NewMockContentLoader(t), 2, discard(), discard(), nil)

	assert.Equal(t, catalog.Empty(), svc.Catalog())
}

func TestCatalogService_ReloadAllMissing(t *testing.T) {
	t.Parallel()

	loader := mocks.NewMockContentLoader(t)
	loader.EXPECT().Load(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, res catalog.Resource) (any, error) {
			return nil, missing(res)
		}).Times(len(catalog.Resources))

	var diag bytes.Buffer
	svc := app.NewCatalogService(loader, 3, discard(),
		slog.New(slog.NewJSONHandler(&diag, nil)), telemetry.NewNoopMetrics())

	require.NoError(t, svc.Reload(context.Background()))

	assert.Equal(t, catalog.Empty(), svc.Catalog())
	assert.Equal(t, len(catalog.Resources), strings.Count(diag.String(), "using fallback"))
	assert.Contains(t, diag.String(), `"kind":"missing"`)
}

func TestCatalogService_ReloadFiltersEntities(t *testing.T) {
	t.Parallel()

	docs := map[string]any{
		"testimonials": map[string]any{"testimonials": []any{
			map[string]any{"id": "t1", "name": "Sophie", "event": "Mariage", "rating": 5.0,
				"comment": "Parfait", "visible": true},
			map[string]any{"id": "t2", "name": "Marc", "event": "Gala", "rating": 4.0,
				"comment": "Très bien", "visible": false},
			map[string]any{"id": "t3", "name": "Invalide"},
		}},
	}

	loader := mocks.NewMockContentLoader(t)
	loader.EXPECT().Load(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, res catalog.Resource) (any, error) {
			if d, ok := docs[res.Name]; ok {
				return d, nil
			}
			return nil, errors.New("boom")
		})

	var diag bytes.Buffer
	svc := app.NewCatalogService(loader, 2, discard(), slog.New(slog.NewJSONHandler(&diag, nil)), nil)

	require.NoError(t, svc.Reload(context.Background()))

	cat := svc.Catalog()
	require.Len(t, cat.Testimonials, 1)
	assert.Equal(t, "t1", cat.Testimonials[0].ID)
	assert.Contains(t, diag.String(), "invalid content entity dropped")
	assert.Contains(t, diag.String(), `"index":2`)
	assert.Contains(t, diag.String(), `"kind":"unknown"`)
}

func TestCatalogService_ReloadCanceledKeepsPrevious(t *testing.T) {
	t.Parallel()

	loader := mocks.NewMockContentLoader(t)
	loader.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, errors.New("unused")).Maybe()

	svc := app.NewCatalogService(loader, 1, discard(), discard(), nil)
	before := svc.Catalog()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Same(t, before, svc.Catalog())
}

func TestCatalogService_LoadOrDefault(t *testing.T) {
	t.Parallel()

	loader := mocks.NewMockContentLoader(t)
	loader.EXPECT().Load(mock.Anything, catalog.News).Return(nil, missing(catalog.News)).Once()
	loader.EXPECT().Load(mock.Anything, catalog.Services).
		Return(map[string]any{"services": []any{}}, nil).Once()

	svc := app.NewCatalogService(loader, 1, discard(), discard(), nil)

	assert.Equal(t, map[string]any{"news": []any{}}, svc.LoadOrDefault(context.Background(), catalog.News))
	assert.Equal(t, map[string]any{"services": []any{}}, svc.LoadOrDefault(context.Background(), catalog.Services))
}
