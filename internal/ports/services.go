package ports

import (
	"context"

	"github.com/jsamuelsen11/exclusive-events/internal/domain/catalog"
)

// CatalogService defines the service port for the validated content view.
// Implemented by the application layer; called by the page handler.
type CatalogService interface {
	// Catalog returns the current immutable catalog. It never returns nil.
	Catalog() *catalog.Catalog

	// Reload loads every resource again and swaps the catalog. Load failures
	// degrade to fallbacks, so the returned error only reports a canceled
	// context.
	Reload(ctx context.Context) error
}
