package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/divine-glow/backoffice/internal/catalog"
)

// ProductSource supplies live product records for price snapshots and stock
// clamping. Stock is read at call time, not frozen when a line is added.
type ProductSource interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

// BuilderState tracks the lifecycle of one in-progress sale.
type BuilderState string

const (
	StateEmpty     BuilderState = "Empty"
	StateBuilding  BuilderState = "Building"
	StateCommitted BuilderState = "Committed"
)

// Builder accumulates the lines of one sale. A committed builder is spent;
// starting another sale requires a fresh builder. All methods are safe for
// concurrent use.
type Builder struct {
	products ProductSource

	mu    sync.Mutex
	state BuilderState
	items []SaleItem
}

// NewBuilder starts an empty sale against the given catalog.
func NewBuilder(products ProductSource) *Builder {
	return &Builder{products: products, state: StateEmpty}
}

// State returns the current lifecycle state.
func (b *Builder) State() BuilderState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Items returns a copy of the current lines.
func (b *Builder) Items() []SaleItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]SaleItem, len(b.items))
	copy(out, b.items)
	return out
}

// Total is recomputed from the lines on every call; nothing is cached
// mid-build.
func (b *Builder) Total() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total()
}

func (b *Builder) total() float64 {
	var total float64
	for _, item := range b.items {
		total += item.Subtotal()
	}
	return total
}

// AddItem adds the product as a new line with quantity 1, snapshotting its
// name, price and category. Adding a product twice is rejected; callers
// adjust the quantity instead.
func (b *Builder) AddItem(ctx context.Context, productID string) (SaleItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateCommitted {
		return SaleItem{}, ErrCommitted
	}
	for _, item := range b.items {
		if item.ProductID == productID {
			return SaleItem{}, fmt.Errorf("%w: %s", ErrDuplicateItem, productID)
		}
	}
	product, err := b.products.Get(ctx, productID)
	if err != nil {
		return SaleItem{}, err
	}
	item := SaleItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		Price:       product.Price,
		Category:    string(product.Category),
	}
	b.items = append(b.items, item)
	b.state = StateBuilding
	return item, nil
}

// QuantityResult reports the outcome of a quantity change. Clamped is a
// warning, not a failure: the request was satisfied with the largest quantity
// the current stock allows.
type QuantityResult struct {
	Qty     int  `json:"qty"`
	Clamped bool `json:"clamped"`
	Removed bool `json:"removed"`
}

// SetQuantity sets the line quantity, clamped to [0, live stock]. A resulting
// quantity of zero removes the line instead of storing it. A product that has
// vanished from the catalog clamps to zero.
func (b *Builder) SetQuantity(ctx context.Context, productID string, qty int) (QuantityResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateCommitted {
		return QuantityResult{}, ErrCommitted
	}
	idx := -1
	for i, item := range b.items {
		if item.ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return QuantityResult{}, fmt.Errorf("%w: %s", ErrItemNotFound, productID)
	}

	stock := 0
	product, err := b.products.Get(ctx, productID)
	switch {
	case err == nil:
		stock = product.Stock
	case errors.Is(err, catalog.ErrNotFound):
		// Product removed mid-build: nothing left to sell.
	default:
		return QuantityResult{}, err
	}

	result := QuantityResult{Qty: qty}
	if result.Qty < 0 {
		result.Qty = 0
	}
	if result.Qty > stock {
		result.Qty = stock
		result.Clamped = true
	}
	if result.Qty == 0 {
		b.items = append(b.items[:idx], b.items[idx+1:]...)
		result.Removed = true
		return result, nil
	}
	b.items[idx].Quantity = result.Qty
	return result, nil
}

// RemoveItem deletes the line. An emptied cart stays in Building because the
// buyer, seller and cashier selections live outside the item list.
func (b *Builder) RemoveItem(productID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateCommitted {
		return ErrCommitted
	}
	for i, item := range b.items {
		if item.ProductID == productID {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, productID)
}

// Commit validates the sale and emits the immutable record. All three
// identity fields and at least one line are required; a failed commit leaves
// the builder untouched.
func (b *Builder) Commit(customerID, sellerID, cashierID, date string) (Sale, error) {
	return b.commitWith(customerID, sellerID, cashierID, date, nil)
}

// commitWith builds the sale and, when a persist step is given, runs it while
// holding the builder lock. The builder is marked spent only once persistence
// succeeds, so a storage failure leaves the cart intact for a retry.
func (b *Builder) commitWith(customerID, sellerID, cashierID, date string, persist func(Sale) error) (Sale, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateCommitted {
		return Sale{}, ErrCommitted
	}
	if strings.TrimSpace(customerID) == "" || strings.TrimSpace(sellerID) == "" || strings.TrimSpace(cashierID) == "" {
		return Sale{}, fmt.Errorf("%w: customer, seller and cashier are required", ErrIncompleteSale)
	}
	if len(b.items) == 0 {
		return Sale{}, fmt.Errorf("%w: no items", ErrIncompleteSale)
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	items := make([]SaleItem, len(b.items))
	copy(items, b.items)
	sale := Sale{
		ID:         fmt.Sprintf("sale-%d", time.Now().UnixMilli()),
		CustomerID: customerID,
		SellerID:   sellerID,
		CashierID:  cashierID,
		Date:       date,
		Items:      items,
		Total:      b.total(),
	}
	if persist != nil {
		if err := persist(sale); err != nil {
			return Sale{}, err
		}
	}
	b.state = StateCommitted
	return sale, nil
}
