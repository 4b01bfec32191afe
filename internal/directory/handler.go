package directory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/divine-glow/backoffice/internal/platform/httpx"
)

// AddCustomerRequest is the body for creating a customer.
type AddCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty"`
}

// PartyView is a staff record without the password hash.
type PartyView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Handler exposes the people lists over HTTP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a directory handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes attaches directory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/customers", h.listCustomers)
	r.Post("/customers", h.addCustomer)
	r.Get("/sellers", h.listSellers)
	r.Get("/cashiers", h.listCashiers)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Customers(r.Context()))
}

func (h *Handler) addCustomer(w http.ResponseWriter, r *http.Request) {
	var req AddCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	customer, err := h.service.AddCustomer(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.logger.Error("add customer", "error", err)
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) listSellers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, partyViews(h.service.Sellers(r.Context())))
}

func (h *Handler) listCashiers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, partyViews(h.service.Cashiers(r.Context())))
}

func partyViews(parties []Party) []PartyView {
	views := make([]PartyView, 0, len(parties))
	for _, p := range parties {
		views = append(views, PartyView{ID: p.ID, Name: p.Name})
	}
	return views
}
