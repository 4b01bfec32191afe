package sales

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/divine-glow/backoffice/internal/catalog"
	"github.com/divine-glow/backoffice/internal/platform/httpx"
)

// AddItemRequest names the product to add to a cart.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// SetQuantityRequest carries the requested line quantity.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CommitRequest carries the identity fields closing a sale.
type CommitRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	SellerID   string `json:"sellerId" validate:"required"`
	CashierID  string `json:"cashierId" validate:"required"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// CartView is the display shape of an in-progress sale.
type CartView struct {
	ID    string       `json:"id"`
	State BuilderState `json:"state"`
	Items []SaleItem   `json:"items"`
	Total float64      `json:"total"`
}

// Handler exposes carts and committed sales over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a sales handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes attaches sales routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/carts", h.createCart)
	r.Get("/carts/{cartID}", h.showCart)
	r.Post("/carts/{cartID}/items", h.addItem)
	r.Put("/carts/{cartID}/items/{productID}", h.setQuantity)
	r.Delete("/carts/{cartID}/items/{productID}", h.removeItem)
	r.Post("/carts/{cartID}/commit", h.commit)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	id := h.service.CreateCart()
	builder, _ := h.service.Cart(id)
	httpx.JSON(w, http.StatusCreated, cartView(id, builder))
}

func (h *Handler) showCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")
	builder, err := h.service.Cart(id)
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, cartView(id, builder))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	item, err := h.service.AddItem(r.Context(), chi.URLParam(r, "cartID"), req.ProductID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	cartID := chi.URLParam(r, "cartID")
	result, err := h.service.SetQuantity(r.Context(), cartID, chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		h.respondError(w, err)
		return
	}
	builder, err := h.service.Cart(cartID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	// A clamp is reported in the body, not as an HTTP failure.
	httpx.JSON(w, http.StatusOK, struct {
		QuantityResult
		Total float64 `json:"total"`
	}{QuantityResult: result, Total: builder.Total()})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	var req CommitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	sale, err := h.service.Commit(r.Context(), chi.URLParam(r, "cartID"), CommitInput{
		CustomerID: req.CustomerID,
		SellerID:   req.SellerID,
		CashierID:  req.CashierID,
		Date:       req.Date,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCartNotFound), errors.Is(err, ErrItemNotFound), errors.Is(err, catalog.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrDuplicateItem), errors.Is(err, ErrCommitted):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrIncompleteSale):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("sales request failed", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func cartView(id string, b *Builder) CartView {
	return CartView{ID: id, State: b.State(), Items: b.Items(), Total: b.Total()}
}
