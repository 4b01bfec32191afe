package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RepositoryPort abstracts catalog persistence for the service.
type RepositoryPort interface {
	Load(ctx context.Context) []Product
	Save(ctx context.Context, products []Product) error
}

// Service owns product identity. Every successful mutation writes the full
// catalog snapshot back to the store before returning.
type Service struct {
	repo   RepositoryPort
	logger *slog.Logger

	// Serialises read-modify-write cycles on the single persisted blob.
	mu sync.Mutex
}

// NewService builds a catalog service.
func NewService(repo RepositoryPort, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the catalog ordered by product name using Spanish collation.
func (s *Service) List(ctx context.Context) []Product {
	products := s.repo.Load(ctx)
	c := collate.New(language.Spanish)
	sort.SliceStable(products, func(i, j int) bool {
		return c.CompareString(products[i].Name, products[j].Name) < 0
	})
	return products
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	for _, p := range s.repo.Load(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Upsert inserts the product when its id is unseen, otherwise replaces the
// existing record in place. A validation failure leaves the catalog untouched.
func (s *Service) Upsert(ctx context.Context, product Product) (Product, error) {
	if err := validate(product); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.repo.Load(ctx)
	if product.ID == "" {
		product.ID = fmt.Sprintf("prod-%d", time.Now().UnixMilli())
	}
	if product.Image == "" {
		product.Image = DefaultImage
	}

	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			// A zero threshold on an edit means the field was omitted;
			// keep the stored value instead of disabling the warning.
			if product.LowStockThreshold == 0 {
				product.LowStockThreshold = products[i].LowStockThreshold
			}
			products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		if product.LowStockThreshold == 0 {
			product.LowStockThreshold = DefaultLowStockThreshold
		}
		products = append([]Product{product}, products...)
	}

	if err := s.repo.Save(ctx, products); err != nil {
		return Product{}, fmt.Errorf("catalog: save: %w", err)
	}
	s.logger.Info("product saved", "id", product.ID, "name", product.Name, "replaced", replaced)
	return product, nil
}

// Remove deletes the product with the given id.
func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.repo.Load(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrNotFound
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return fmt.Errorf("catalog: save: %w", err)
	}
	s.logger.Info("product removed", "id", id)
	return nil
}

// AdjustStock decrements (or increments) stock for the given product, clamped
// at zero. Used by the sale-commit policy; the catalog stays the only writer
// of product records.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.repo.Load(ctx)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		next := products[i].Stock + delta
		if next < 0 {
			next = 0
		}
		products[i].Stock = next
		if err := s.repo.Save(ctx, products); err != nil {
			return fmt.Errorf("catalog: save: %w", err)
		}
		return nil
	}
	return ErrNotFound
}

func validate(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	if p.LowStockThreshold < 0 {
		return fmt.Errorf("%w: low stock threshold must not be negative", ErrValidation)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, p.Category)
	}
	return nil
}
