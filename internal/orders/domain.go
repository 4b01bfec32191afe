// Package orders holds point-of-sale orders. The sales ledger only reads
// them; status transitions happen here, outside the reconciliation core.
package orders

import "errors"

// Status is the POS order lifecycle state.
type Status string

const (
	StatusPendiente Status = "Pendiente"
	StatusPagado    Status = "Pagado"
	StatusEnviado   Status = "Enviado"
	StatusEntregado Status = "Entregado"
	StatusCancelado Status = "Cancelado"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusPendiente, StatusPagado, StatusEnviado, StatusEntregado, StatusCancelado}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// transitions is the legal status graph. Entregado and Cancelado are terminal.
var transitions = map[Status][]Status{
	StatusPendiente: {StatusPagado, StatusCancelado},
	StatusPagado:    {StatusEnviado},
	StatusEnviado:   {StatusEntregado},
}

// CanTransition reports whether from may move to to.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PaymentMethod is how a POS order was paid.
type PaymentMethod string

const (
	PaymentEfectivo PaymentMethod = "Efectivo"
	PaymentTarjeta  PaymentMethod = "Tarjeta"
	PaymentYape     PaymentMethod = "Yape"
	PaymentPlin     PaymentMethod = "Plin"
)

// Item is one line of a POS order. Unlike manual sale lines it carries no
// category snapshot; the ledger backfills that from the live catalog.
type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a point-of-sale order. Customer and seller are denormalized names,
// not foreign keys.
type Order struct {
	ID             string        `json:"id"`
	CustomerName   string        `json:"customerName"`
	CustomerAvatar string        `json:"customerAvatar,omitempty"`
	Date           string        `json:"date"`
	Status         Status        `json:"status"`
	Items          []Item        `json:"items"`
	Total          float64       `json:"total"`
	PaymentMethod  PaymentMethod `json:"paymentMethod,omitempty"`
	SellerName     string        `json:"sellerName,omitempty"`
}

var (
	// ErrNotFound indicates no order carries the requested id.
	ErrNotFound = errors.New("orders: order not found")
	// ErrInvalidTransition indicates a status change the lifecycle forbids.
	ErrInvalidTransition = errors.New("orders: invalid status transition")
	// ErrUnknownStatus indicates a status outside the lifecycle.
	ErrUnknownStatus = errors.New("orders: unknown status")
)
