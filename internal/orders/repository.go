package orders

import (
	"context"
	"log/slog"

	"github.com/divine-glow/backoffice/internal/platform/kvstore"
)

// Repository persists the order book as one JSON snapshot, seeded on first run.
type Repository struct {
	col *kvstore.Collection[Order]
}

// NewRepository constructs a repository over the given store.
func NewRepository(store kvstore.Store, logger *slog.Logger) *Repository {
	return &Repository{
		col: kvstore.NewCollection[Order](store, kvstore.KeyOrders, logger, true),
	}
}

// Load returns the persisted orders, seeding them on first run.
func (r *Repository) Load(ctx context.Context) []Order {
	return r.col.Load(ctx, SeedOrders())
}

// Save overwrites the full persisted order snapshot.
func (r *Repository) Save(ctx context.Context, orders []Order) error {
	return r.col.Save(ctx, orders)
}
