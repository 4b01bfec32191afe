package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/divine-glow/backoffice/internal/platform/httpx"
)

// UpsertProductRequest is the write payload for catalog edits.
type UpsertProductRequest struct {
	ID                string   `json:"id"`
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	Price             float64  `json:"price" validate:"gte=0"`
	Stock             int      `json:"stock" validate:"gte=0"`
	LowStockThreshold int      `json:"lowStockThreshold" validate:"gte=0"`
	Image             string   `json:"image" validate:"omitempty,url"`
	Category          Category `json:"category" validate:"required"`
}

// ProductView decorates a product with its derived stock status for display.
type ProductView struct {
	Product
	StockStatus StockStatus `json:"stockStatus"`
	StockLabel  string      `json:"stockLabel"`
}

// Handler exposes the catalog over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a catalog handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes attaches catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upsert)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products := h.service.List(r.Context())
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newView(p))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, newView(product))
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, "")
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, id string) {
	var req UpsertProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if id != "" {
		req.ID = id
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	product, err := h.service.Upsert(r.Context(), Product{
		ID:                req.ID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		Image:             req.Image,
		Category:          req.Category,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
			return
		}
		h.logger.Error("upsert product", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, newView(product))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	err := h.service.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		h.logger.Error("remove product", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newView(p Product) ProductView {
	status := p.Status()
	return ProductView{Product: p, StockStatus: status, StockLabel: status.Label()}
}
