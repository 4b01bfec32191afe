package ledger

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divine-glow/backoffice/internal/platform/httpx"
)

// Handler serves the merged ledger report.
type Handler struct {
	service *Service
}

// NewHandler constructs a ledger handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MountRoutes attaches ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.report)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Report(r.Context()))
}
