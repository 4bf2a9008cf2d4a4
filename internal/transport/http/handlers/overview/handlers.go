package overviewhandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/overview"
	"hrdash/internal/domain/workhours"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
)

type Handler struct {
	svc *overview.Service
}

func NewHandler(svc *overview.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/overview", h.handleOverview)
}

// handleOverview serves the landing-page snapshot: headline metrics,
// department insights, leave-type breakdown and threshold alerts for the
// requested date (today when omitted).
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if err := workhours.ValidateRange(date, date); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", err.Error(), requestID)
		return
	}

	snapshot, err := h.svc.Build(r.Context(), date)
	if err != nil {
		slog.Error("overview build failed", "err", err, "date", date, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load dashboard overview.", requestID)
		return
	}
	api.Success(w, snapshot, requestID)
}
