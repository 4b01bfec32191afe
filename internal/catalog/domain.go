package catalog

import "errors"

// Category enumerates the product categories carried by the shop.
type Category string

const (
	CategoryPerfumes    Category = "Perfumes"
	CategoryMaquillaje  Category = "Maquillaje"
	CategorySkincare    Category = "Cuidado de la piel"
	CategoryAccessories Category = "Accesorios y herramientas"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryPerfumes, CategoryMaquillaje, CategorySkincare, CategoryAccessories}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is a catalog record. Stock is mutated only through catalog edits;
// sale records carry their own snapshots and never read back into it.
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Image             string   `json:"image"`
	Category          Category `json:"category"`
}

// Status derives the product's stock classification from its current stock
// and threshold.
func (p Product) Status() StockStatus {
	return ClassifyStock(p.Stock, p.LowStockThreshold)
}

// StockStatus is the derived stock classification. It is computed on read and
// never persisted.
type StockStatus string

const (
	StockStatusOut StockStatus = "OutOfStock"
	StockStatusLow StockStatus = "Low"
	StockStatusIn  StockStatus = "InStock"
)

// ClassifyStock derives the stock status. Zero stock always classifies as
// out-of-stock, even when the threshold is also zero.
func ClassifyStock(stock, threshold int) StockStatus {
	if stock == 0 {
		return StockStatusOut
	}
	if stock <= threshold {
		return StockStatusLow
	}
	return StockStatusIn
}

// Label returns the badge text shown in the dashboard.
func (s StockStatus) Label() string {
	switch s {
	case StockStatusOut:
		return "Agotado"
	case StockStatusLow:
		return "Stock bajo"
	default:
		return "En stock"
	}
}

// ErrNotFound indicates no product carries the requested id.
var ErrNotFound = errors.New("catalog: product not found")

// ErrValidation indicates a rejected write; the persisted catalog is unchanged.
var ErrValidation = errors.New("catalog: validation failed")
