package sales

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/divine-glow/backoffice/internal/catalog"
)

// RepositoryPort abstracts sale persistence for the service.
type RepositoryPort interface {
	List(ctx context.Context) []Sale
	Append(ctx context.Context, sale Sale) error
}

// CatalogPort is the slice of the catalog service the sales flow needs.
type CatalogPort interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
	AdjustStock(ctx context.Context, id string, delta int) error
}

// ServiceConfig groups optional settings.
type ServiceConfig struct {
	// DecrementStockOnCommit reduces catalog stock by the sold quantities
	// after a successful commit. Off by default; fulfilment may be handled
	// by a separate step.
	DecrementStockOnCommit bool

	// OnCommit runs after every successful commit, for instrumentation.
	OnCommit func()
}

// Service coordinates cart building and sale persistence.
type Service struct {
	repo    RepositoryPort
	catalog CatalogPort
	logger  *slog.Logger
	cfg     ServiceConfig

	mu    sync.Mutex
	carts map[string]*Builder
}

// NewService builds a sales service.
func NewService(repo RepositoryPort, cat CatalogPort, cfg ServiceConfig, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: cat,
		logger:  logger,
		cfg:     cfg,
		carts:   make(map[string]*Builder),
	}
}

// CreateCart opens a new in-progress sale and returns its id.
func (s *Service) CreateCart() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = NewBuilder(s.catalog)
	s.mu.Unlock()
	return id
}

// Cart returns the builder for the given cart id.
func (s *Service) Cart(id string) (*Builder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	builder, ok := s.carts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCartNotFound, id)
	}
	return builder, nil
}

// AddItem adds a product line to the cart.
func (s *Service) AddItem(ctx context.Context, cartID, productID string) (SaleItem, error) {
	builder, err := s.Cart(cartID)
	if err != nil {
		return SaleItem{}, err
	}
	return builder.AddItem(ctx, productID)
}

// SetQuantity adjusts a line, clamping to live stock.
func (s *Service) SetQuantity(ctx context.Context, cartID, productID string, qty int) (QuantityResult, error) {
	builder, err := s.Cart(cartID)
	if err != nil {
		return QuantityResult{}, err
	}
	return builder.SetQuantity(ctx, productID, qty)
}

// RemoveItem deletes a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) error {
	builder, err := s.Cart(cartID)
	if err != nil {
		return err
	}
	return builder.RemoveItem(productID)
}

// CommitInput carries the identity fields for a commit.
type CommitInput struct {
	CustomerID string
	SellerID   string
	CashierID  string
	Date       string
}

// Commit finalises the cart into an immutable Sale, persists it and drops the
// cart. A validation or storage failure leaves both the cart and the sale list
// unchanged, so the commit can be retried.
func (s *Service) Commit(ctx context.Context, cartID string, input CommitInput) (Sale, error) {
	builder, err := s.Cart(cartID)
	if err != nil {
		return Sale{}, err
	}
	sale, err := builder.commitWith(input.CustomerID, input.SellerID, input.CashierID, input.Date, func(sale Sale) error {
		return s.repo.Append(ctx, sale)
	})
	if err != nil {
		return Sale{}, err
	}

	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()

	if s.cfg.DecrementStockOnCommit {
		for _, item := range sale.Items {
			if err := s.catalog.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				s.logger.Warn("stock decrement failed", "product_id", item.ProductID, "error", err)
			}
		}
	}

	if s.cfg.OnCommit != nil {
		s.cfg.OnCommit()
	}
	s.logger.Info("sale committed", "id", sale.ID, "items", len(sale.Items), "total", sale.Total)
	return sale, nil
}

// List returns all committed sales, most recent first.
func (s *Service) List(ctx context.Context) []Sale {
	return s.repo.List(ctx)
}
