package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/divine-glow/backoffice/internal/catalog"
)

type fakeCatalog struct {
	products map[string]catalog.Product
}

func newFakeCatalog(products ...catalog.Product) *fakeCatalog {
	m := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (catalog.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (f *fakeCatalog) AdjustStock(ctx context.Context, id string, delta int) error {
	p, ok := f.products[id]
	if !ok {
		return catalog.ErrNotFound
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	f.products[id] = p
	return nil
}

func serum() catalog.Product {
	return catalog.Product{
		ID:                "prod-001",
		Name:              "Sérum Renovador Nocturno",
		Price:             75,
		Stock:             25,
		LowStockThreshold: 10,
		Category:          catalog.CategorySkincare,
	}
}

func cleanser() catalog.Product {
	return catalog.Product{
		ID:                "prod-003",
		Name:              "Limpiador Facial Suave",
		Price:             30,
		Stock:             5,
		LowStockThreshold: 10,
		Category:          catalog.CategorySkincare,
	}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	cat := newFakeCatalog(serum())
	b := NewBuilder(cat)
	ctx := context.Background()

	require.Equal(t, StateEmpty, b.State())

	item, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)
	require.Equal(t, "Sérum Renovador Nocturno", item.ProductName)
	require.Equal(t, 1, item.Quantity)
	require.Equal(t, 75.0, item.Price)
	require.Equal(t, string(catalog.CategorySkincare), item.Category)
	require.Equal(t, StateBuilding, b.State())

	// Later catalog edits must not reach into the snapshot.
	p := cat.products["prod-001"]
	p.Price = 99
	p.Name = "Renamed"
	cat.products["prod-001"] = p

	items := b.Items()
	require.Equal(t, 75.0, items[0].Price)
	require.Equal(t, "Sérum Renovador Nocturno", items[0].ProductName)
	require.Equal(t, 75.0, b.Total())
}

func TestAddItemDuplicateRejected(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum()))
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)

	_, err = b.AddItem(ctx, "prod-001")
	require.ErrorIs(t, err, ErrDuplicateItem)
	require.Len(t, b.Items(), 1)
	require.Equal(t, 1, b.Items()[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	b := NewBuilder(newFakeCatalog())
	_, err := b.AddItem(context.Background(), "prod-404")
	require.ErrorIs(t, err, catalog.ErrNotFound)
	require.Equal(t, StateEmpty, b.State())
}

func TestSetQuantityClampsToLiveStock(t *testing.T) {
	b := NewBuilder(newFakeCatalog(cleanser()))
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-003")
	require.NoError(t, err)

	result, err := b.SetQuantity(ctx, "prod-003", 8)
	require.NoError(t, err)
	require.True(t, result.Clamped)
	require.Equal(t, 5, result.Qty)
	require.False(t, result.Removed)
	require.Equal(t, 5, b.Items()[0].Quantity)
}

func TestSetQuantityReadsStockLive(t *testing.T) {
	cat := newFakeCatalog(serum())
	b := NewBuilder(cat)
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)

	// Stock shrinks after the line was added; the clamp must see it.
	p := cat.products["prod-001"]
	p.Stock = 2
	cat.products["prod-001"] = p

	result, err := b.SetQuantity(ctx, "prod-001", 10)
	require.NoError(t, err)
	require.True(t, result.Clamped)
	require.Equal(t, 2, result.Qty)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum()))
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)

	result, err := b.SetQuantity(ctx, "prod-001", 0)
	require.NoError(t, err)
	require.True(t, result.Removed)
	require.Empty(t, b.Items())
	require.Equal(t, StateBuilding, b.State())
}

func TestSetQuantityVanishedProductRemovesLine(t *testing.T) {
	cat := newFakeCatalog(serum())
	b := NewBuilder(cat)
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)

	delete(cat.products, "prod-001")

	result, err := b.SetQuantity(ctx, "prod-001", 3)
	require.NoError(t, err)
	require.True(t, result.Clamped)
	require.True(t, result.Removed)
	require.Empty(t, b.Items())
}

func TestSetQuantityUnknownLine(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum()))
	_, err := b.SetQuantity(context.Background(), "prod-001", 2)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemKeepsBuildingState(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum()))
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)
	require.NoError(t, b.RemoveItem("prod-001"))

	// Buyer and seller selections persist independently of the items.
	require.Equal(t, StateBuilding, b.State())
	require.ErrorIs(t, b.RemoveItem("prod-001"), ErrItemNotFound)
}

func TestTotalRecomputed(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum(), cleanser()))
	ctx := context.Background()

	require.Zero(t, b.Total())

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)
	_, err = b.AddItem(ctx, "prod-003")
	require.NoError(t, err)
	require.InDelta(t, 105.0, b.Total(), 1e-9)

	_, err = b.SetQuantity(ctx, "prod-003", 3)
	require.NoError(t, err)
	require.InDelta(t, 165.0, b.Total(), 1e-9)
}

func TestCommitValidation(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum()))
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)

	_, err = b.Commit("cust-001", "", "cashier-1", "2024-05-01")
	require.ErrorIs(t, err, ErrIncompleteSale)
	require.Equal(t, StateBuilding, b.State())

	empty := NewBuilder(newFakeCatalog(serum()))
	_, err = empty.Commit("cust-001", "seller-1", "cashier-1", "2024-05-01")
	require.ErrorIs(t, err, ErrIncompleteSale)
}

func TestCommitEmitsImmutableSale(t *testing.T) {
	b := NewBuilder(newFakeCatalog(serum(), cleanser()))
	ctx := context.Background()

	_, err := b.AddItem(ctx, "prod-001")
	require.NoError(t, err)
	_, err = b.SetQuantity(ctx, "prod-001", 2)
	require.NoError(t, err)
	_, err = b.AddItem(ctx, "prod-003")
	require.NoError(t, err)

	sale, err := b.Commit("cust-001", "seller-1", "cashier-1", "2024-05-01")
	require.NoError(t, err)
	require.Regexp(t, `^sale-\d+$`, sale.ID)
	require.Equal(t, "2024-05-01", sale.Date)
	require.Len(t, sale.Items, 2)

	var sum float64
	for _, item := range sale.Items {
		sum += item.Price * float64(item.Quantity)
	}
	require.Equal(t, sum, sale.Total)
	require.Equal(t, StateCommitted, b.State())

	// A committed builder is spent.
	_, err = b.AddItem(ctx, "prod-003")
	require.ErrorIs(t, err, ErrCommitted)
	_, err = b.SetQuantity(ctx, "prod-001", 1)
	require.ErrorIs(t, err, ErrCommitted)
	require.ErrorIs(t, b.RemoveItem("prod-001"), ErrCommitted)
	_, err = b.Commit("cust-001", "seller-1", "cashier-1", "2024-05-01")
	require.ErrorIs(t, err, ErrCommitted)
}
