package ledger

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/divine-glow/backoffice/internal/catalog"
	"github.com/divine-glow/backoffice/internal/orders"
	"github.com/divine-glow/backoffice/internal/sales"
)

// SalesPort supplies the manual sales history.
type SalesPort interface {
	List(ctx context.Context) []sales.Sale
}

// OrdersPort supplies the POS order book.
type OrdersPort interface {
	List(ctx context.Context) []orders.Order
}

// CatalogPort resolves products for category backfill.
type CatalogPort interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

// DirectoryPort resolves customer, seller and cashier names by id.
type DirectoryPort interface {
	CustomerName(ctx context.Context, id string) string
	SellerName(ctx context.Context, id string) string
	CashierName(ctx context.Context, id string) string
}

// Service recomputes the merged ledger on demand. Concurrent identical
// requests share one computation through singleflight.
type Service struct {
	salesSrc  SalesPort
	ordersSrc OrdersPort
	catalog   CatalogPort
	directory DirectoryPort

	group singleflight.Group
}

// NewService wires the read-side ports.
func NewService(salesSrc SalesPort, ordersSrc OrdersPort, cat CatalogPort, dir DirectoryPort) *Service {
	return &Service{salesSrc: salesSrc, ordersSrc: ordersSrc, catalog: cat, directory: dir}
}

// Report returns the merged ledger, most recent first.
func (s *Service) Report(ctx context.Context) []Entry {
	v, _, _ := s.group.Do("report", func() (any, error) {
		return s.build(ctx), nil
	})
	return v.([]Entry)
}

func (s *Service) build(ctx context.Context) []Entry {
	lk := Lookups{
		CustomerName: func(id string) string { return s.directory.CustomerName(ctx, id) },
		SellerName:   func(id string) string { return s.directory.SellerName(ctx, id) },
		CashierName:  func(id string) string { return s.directory.CashierName(ctx, id) },
		Category: func(productID string) string {
			p, err := s.catalog.Get(ctx, productID)
			if err != nil {
				return Unknown
			}
			return string(p.Category)
		},
	}
	return Merge(s.salesSrc.List(ctx), s.ordersSrc.List(ctx), lk)
}
