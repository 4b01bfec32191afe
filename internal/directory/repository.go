package directory

import (
	"context"
	"log/slog"

	"github.com/divine-glow/backoffice/internal/platform/kvstore"
)

// Repository persists the three people lists as independent seed-backed
// snapshots.
type Repository struct {
	customers *kvstore.Collection[Customer]
	sellers   *kvstore.Collection[Party]
	cashiers  *kvstore.Collection[Party]
}

// NewRepository constructs a repository over the given store.
func NewRepository(store kvstore.Store, logger *slog.Logger) *Repository {
	return &Repository{
		customers: kvstore.NewCollection[Customer](store, kvstore.KeyCustomers, logger, true),
		sellers:   kvstore.NewCollection[Party](store, kvstore.KeySellers, logger, true),
		cashiers:  kvstore.NewCollection[Party](store, kvstore.KeyCashiers, logger, true),
	}
}

func (r *Repository) Customers(ctx context.Context) []Customer {
	return r.customers.Load(ctx, SeedCustomers())
}

func (r *Repository) Sellers(ctx context.Context) []Party {
	return r.sellers.Load(ctx, SeedSellers())
}

func (r *Repository) Cashiers(ctx context.Context) []Party {
	return r.cashiers.Load(ctx, SeedCashiers())
}

// SaveCustomers overwrites the full customer snapshot.
func (r *Repository) SaveCustomers(ctx context.Context, customers []Customer) error {
	return r.customers.Save(ctx, customers)
}
