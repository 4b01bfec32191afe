// Package ledger projects manual sales and paid POS orders into one
// chronologically sorted read-only view. It never writes to either source.
package ledger

import (
	"sort"
	"time"

	"github.com/divine-glow/backoffice/internal/orders"
	"github.com/divine-glow/backoffice/internal/sales"
)

// Source discriminates where a ledger entry came from.
type Source string

const (
	SourceManual Source = "Manual"
	SourcePOS    Source = "POS"
)

// Unknown is the placeholder for names and categories that cannot be
// resolved anymore. Read paths degrade instead of failing.
const Unknown = "N/A"

// Item is one display line of a ledger entry. Category is always filled,
// backfilled from the live catalog when the source line lacks one.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Entry is the display-uniform union of a manual sale and a paid POS order.
// It exists only as a projection and is never persisted.
type Entry struct {
	ID           string  `json:"id"`
	Source       Source  `json:"sourceType"`
	CustomerName string  `json:"customerName"`
	SellerName   string  `json:"sellerName"`
	CashierName  string  `json:"cashierName,omitempty"`
	Date         string  `json:"date"`
	Total        float64 `json:"total"`
	Items        []Item  `json:"items"`
}

// Lookups resolve foreign keys and missing categories at merge time.
// Every resolver must return Unknown rather than fail on a miss.
type Lookups struct {
	CustomerName func(id string) string
	SellerName   func(id string) string
	CashierName  func(id string) string
	Category     func(productID string) string
}

const dateLayout = "2006-01-02"

// Merge filters orders to Pagado, tags both families, and sorts the
// concatenation descending by date. The sort is stable, so same-date manual
// sales keep their position ahead of same-date orders. Entries whose date
// does not parse sort after all dated ones. Merge reads its inputs only.
func Merge(manual []sales.Sale, posOrders []orders.Order, lk Lookups) []Entry {
	entries := make([]Entry, 0, len(manual)+len(posOrders))
	for _, s := range manual {
		entries = append(entries, fromSale(s, lk))
	}
	for _, o := range posOrders {
		if o.Status != orders.StatusPagado {
			continue
		}
		entries = append(entries, fromOrder(o, lk))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ti, iok := parseDate(entries[i].Date)
		tj, jok := parseDate(entries[j].Date)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
	return entries
}

func fromSale(s sales.Sale, lk Lookups) Entry {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		category := it.Category
		if category == "" {
			category = lk.Category(it.ProductID)
		}
		items = append(items, Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Category:    category,
		})
	}
	return Entry{
		ID:           s.ID,
		Source:       SourceManual,
		CustomerName: lk.CustomerName(s.CustomerID),
		SellerName:   lk.SellerName(s.SellerID),
		CashierName:  lk.CashierName(s.CashierID),
		Date:         s.Date,
		Total:        s.Total,
		Items:        items,
	}
}

func fromOrder(o orders.Order, lk Lookups) Entry {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Category:    lk.Category(it.ProductID),
		})
	}
	seller := o.SellerName
	if seller == "" {
		seller = Unknown
	}
	return Entry{
		ID:           o.ID,
		Source:       SourcePOS,
		CustomerName: o.CustomerName,
		SellerName:   seller,
		Date:         o.Date,
		Total:        o.Total,
		Items:        items,
	}
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
