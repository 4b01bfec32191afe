package sales

import "errors"

// SaleItem is one line of a sale. Name, price and category are snapshots taken
// when the line is added; later catalog edits never reach back into them.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

// Subtotal returns price times quantity for the line.
func (i SaleItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Sale is a committed manual sale. Immutable once created; there are no edit
// or delete operations.
type Sale struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	SellerID   string     `json:"sellerId"`
	CashierID  string     `json:"cashierId"`
	Date       string     `json:"date"`
	Items      []SaleItem `json:"items"`
	Total      float64    `json:"total"`
}

var (
	// ErrDuplicateItem indicates the product is already a line in the cart;
	// the existing line is left untouched.
	ErrDuplicateItem = errors.New("sales: product already in cart")
	// ErrItemNotFound indicates no cart line carries the product id.
	ErrItemNotFound = errors.New("sales: item not in cart")
	// ErrIncompleteSale indicates a commit with missing identities or no items.
	ErrIncompleteSale = errors.New("sales: incomplete sale")
	// ErrCommitted indicates an operation on an already committed cart.
	ErrCommitted = errors.New("sales: cart already committed")
	// ErrCartNotFound indicates an unknown cart id.
	ErrCartNotFound = errors.New("sales: cart not found")
)
