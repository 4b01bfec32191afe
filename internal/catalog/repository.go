package catalog

import (
	"context"
	"log/slog"

	"github.com/divine-glow/backoffice/internal/platform/kvstore"
)

// Repository persists the catalog as one JSON snapshot. The catalog key is
// seed-backed: a missing blob is populated with the first-run products.
type Repository struct {
	col *kvstore.Collection[Product]
}

// NewRepository constructs a repository over the given store.
func NewRepository(store kvstore.Store, logger *slog.Logger) *Repository {
	return &Repository{
		col: kvstore.NewCollection[Product](store, kvstore.KeyProducts, logger, true),
	}
}

// Load returns the persisted catalog, seeding it on first run.
func (r *Repository) Load(ctx context.Context) []Product {
	return r.col.Load(ctx, SeedProducts())
}

// Save overwrites the full persisted catalog snapshot.
func (r *Repository) Save(ctx context.Context, products []Product) error {
	return r.col.Save(ctx, products)
}
