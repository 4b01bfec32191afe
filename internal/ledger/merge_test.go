package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/divine-glow/backoffice/internal/orders"
	"github.com/divine-glow/backoffice/internal/sales"
)

func testLookups() Lookups {
	names := map[string]string{
		"cust-1": "Ana Pérez",
		"sell-1": "Vendedor 1",
		"cash-1": "Cajero 1",
	}
	categories := map[string]string{
		"prod-001": "Cuidado de la piel",
		"prod-005": "Maquillaje",
	}
	byID := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return Unknown
	}
	return Lookups{
		CustomerName: byID,
		SellerName:   byID,
		CashierName:  byID,
		Category: func(productID string) string {
			if c, ok := categories[productID]; ok {
				return c
			}
			return Unknown
		},
	}
}

func manualSale(id, date string) sales.Sale {
	return sales.Sale{
		ID:         id,
		CustomerID: "cust-1",
		SellerID:   "sell-1",
		CashierID:  "cash-1",
		Date:       date,
		Items: []sales.SaleItem{
			{ProductID: "prod-001", ProductName: "Sérum", Quantity: 2, Price: 75, Category: "Cuidado de la piel"},
		},
		Total: 150,
	}
}

func posOrder(id, date string, status orders.Status) orders.Order {
	return orders.Order{
		ID:           id,
		CustomerName: "Carlos García",
		Date:         date,
		Status:       status,
		Items: []orders.Item{
			{ProductID: "prod-005", ProductName: "Contorno de Ojos", Quantity: 1, Price: 60},
		},
		Total: 60,
	}
}

func TestMergeFiltersAndSorts(t *testing.T) {
	manual := []sales.Sale{manualSale("sale-1", "2024-05-20")}
	book := []orders.Order{
		posOrder("ord-1", "2024-05-25", orders.StatusPagado),
		posOrder("ord-2", "2024-05-26", orders.StatusPendiente),
	}

	got := Merge(manual, book, testLookups())

	require.Len(t, got, 2)
	require.Equal(t, "ord-1", got[0].ID)
	require.Equal(t, SourcePOS, got[0].Source)
	require.Equal(t, "sale-1", got[1].ID)
	require.Equal(t, SourceManual, got[1].Source)
}

func TestMergeStableTieBreakManualFirst(t *testing.T) {
	manual := []sales.Sale{manualSale("sale-1", "2024-05-20")}
	book := []orders.Order{posOrder("ord-1", "2024-05-20", orders.StatusPagado)}

	got := Merge(manual, book, testLookups())

	require.Len(t, got, 2)
	require.Equal(t, "sale-1", got[0].ID)
	require.Equal(t, "ord-1", got[1].ID)
}

func TestMergeInputOrderIndependent(t *testing.T) {
	a := manualSale("sale-1", "2024-05-18")
	b := manualSale("sale-2", "2024-05-21")
	o := posOrder("ord-1", "2024-05-19", orders.StatusPagado)

	first := Merge([]sales.Sale{a, b}, []orders.Order{o}, testLookups())
	second := Merge([]sales.Sale{b, a}, []orders.Order{o}, testLookups())

	require.Equal(t, first, second)
	require.Equal(t, []string{"sale-2", "ord-1", "sale-1"},
		[]string{first[0].ID, first[1].ID, first[2].ID})
}

func TestMergeIdempotent(t *testing.T) {
	manual := []sales.Sale{manualSale("sale-1", "2024-05-20")}
	book := []orders.Order{posOrder("ord-1", "2024-05-25", orders.StatusPagado)}

	first := Merge(manual, book, testLookups())
	second := Merge(manual, book, testLookups())
	require.Equal(t, first, second)
}

func TestMergeBackfillsCategories(t *testing.T) {
	book := []orders.Order{posOrder("ord-1", "2024-05-25", orders.StatusPagado)}

	got := Merge(nil, book, testLookups())
	require.Equal(t, "Maquillaje", got[0].Items[0].Category)
}

func TestMergeCategoryFallsBackWhenProductGone(t *testing.T) {
	order := posOrder("ord-1", "2024-05-25", orders.StatusPagado)
	order.Items[0].ProductID = "prod-deleted"

	got := Merge(nil, []orders.Order{order}, testLookups())
	require.Equal(t, Unknown, got[0].Items[0].Category)
}

func TestMergeResolvesNames(t *testing.T) {
	manual := []sales.Sale{manualSale("sale-1", "2024-05-20")}
	book := []orders.Order{posOrder("ord-1", "2024-05-25", orders.StatusPagado)}

	got := Merge(manual, book, testLookups())

	pos, man := got[0], got[1]
	require.Equal(t, "Carlos García", pos.CustomerName)
	require.Equal(t, Unknown, pos.SellerName)
	require.Equal(t, "Ana Pérez", man.CustomerName)
	require.Equal(t, "Vendedor 1", man.SellerName)
	require.Equal(t, "Cajero 1", man.CashierName)
}

func TestMergeUnknownCustomerID(t *testing.T) {
	sale := manualSale("sale-1", "2024-05-20")
	sale.CustomerID = "cust-missing"

	got := Merge([]sales.Sale{sale}, nil, testLookups())
	require.Equal(t, Unknown, got[0].CustomerName)
}

func TestMergeUnparseableDatesSortLast(t *testing.T) {
	bad := manualSale("sale-bad", "no date")
	good := manualSale("sale-good", "2024-01-01")

	got := Merge([]sales.Sale{bad, good}, nil, testLookups())

	require.Equal(t, "sale-good", got[0].ID)
	require.Equal(t, "sale-bad", got[1].ID)
}
