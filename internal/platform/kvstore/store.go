// Package kvstore persists named JSON-encoded collections, one blob per key.
package kvstore

import (
	"context"
	"errors"
	"log/slog"
)

// Storage keys carried over from the dashboard deployment. Each key holds one
// whole JSON document; writes always replace the full blob.
const (
	KeyProducts  = "divine-glow-products"
	KeyCustomers = "divine-glow-customers"
	KeySellers   = "divine-glow-sellers"
	KeyCashiers  = "divine-glow-cashiers"
	KeySales     = "divine-glow-sales"
	KeyOrders    = "divine-glow-orders"
)

// ErrKeyMissing indicates the key has never been written.
var ErrKeyMissing = errors.New("kvstore: key missing")

// ErrCorrupt indicates the stored blob is not valid JSON for the target type.
var ErrCorrupt = errors.New("kvstore: corrupt blob")

// Store reads and writes named JSON blobs.
type Store interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
}

// Seeder is implemented by backends that can write a key only when absent,
// so a first-run seed cannot overwrite a concurrent writer.
type Seeder interface {
	SeedOnce(ctx context.Context, key string, v any) error
}

// Collection binds a storage key to a default seed for one record type.
type Collection[T any] struct {
	store    Store
	key      string
	logger   *slog.Logger
	seedBack bool
}

// NewCollection constructs a collection. When seedBack is true, a missing key
// is populated with the default value on first load so the seed becomes durable.
func NewCollection[T any](store Store, key string, logger *slog.Logger, seedBack bool) *Collection[T] {
	return &Collection[T]{store: store, key: key, logger: logger, seedBack: seedBack}
}

// Key returns the storage key backing this collection.
func (c *Collection[T]) Key() string { return c.key }

// Load returns the persisted records, or def when the key is absent or the
// blob is malformed. A malformed blob is re-persisted with def so subsequent
// loads are clean; an absent key is persisted only for seed-backed collections.
// Failures never propagate to the caller.
func (c *Collection[T]) Load(ctx context.Context, def []T) []T {
	var items []T
	err := c.store.Load(ctx, c.key, &items)
	if err == nil {
		return items
	}
	switch {
	case errors.Is(err, ErrCorrupt):
		c.logger.Warn("discarding corrupt blob", "key", c.key, "error", err)
		if saveErr := c.store.Save(ctx, c.key, def); saveErr != nil {
			c.logger.Warn("re-persist default failed", "key", c.key, "error", saveErr)
		}
	case errors.Is(err, ErrKeyMissing):
		if c.seedBack {
			c.seed(ctx, def)
		}
	default:
		c.logger.Warn("load failed, using default", "key", c.key, "error", err)
	}
	return def
}

// Save overwrites the full persisted blob with items.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	return c.store.Save(ctx, c.key, items)
}

func (c *Collection[T]) seed(ctx context.Context, def []T) {
	if seeder, ok := c.store.(Seeder); ok {
		if err := seeder.SeedOnce(ctx, c.key, def); err != nil {
			c.logger.Warn("seed failed", "key", c.key, "error", err)
		}
		return
	}
	if err := c.store.Save(ctx, c.key, def); err != nil {
		c.logger.Warn("seed failed", "key", c.key, "error", err)
	}
}
