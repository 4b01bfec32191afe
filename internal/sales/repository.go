package sales

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/divine-glow/backoffice/internal/platform/kvstore"
)

// Repository is the append-only store of committed sales. The persisted list
// is kept most-recent-first; that ordering is a storage invariant, not a
// display-time sort.
type Repository struct {
	col *kvstore.Collection[Sale]
}

// NewRepository constructs a repository over the given store. The sales key
// is not seed-backed: a fresh installation simply has no sales yet.
func NewRepository(store kvstore.Store, logger *slog.Logger) *Repository {
	return &Repository{
		col: kvstore.NewCollection[Sale](store, kvstore.KeySales, logger, false),
	}
}

// List returns the persisted sales unmodified.
func (r *Repository) List(ctx context.Context) []Sale {
	return r.col.Load(ctx, []Sale{})
}

// Append prepends the sale and writes the full list back.
func (r *Repository) Append(ctx context.Context, sale Sale) error {
	sales := r.List(ctx)
	sales = append([]Sale{sale}, sales...)
	if err := r.col.Save(ctx, sales); err != nil {
		return fmt.Errorf("sales: append %s: %w", sale.ID, err)
	}
	return nil
}
