package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/erp"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
)

type Handler struct {
	erp *erp.Client
}

func NewHandler(client *erp.Client) *Handler {
	return &Handler{erp: client}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

// handleLogin proxies the credential pair to the ERP session login. On the
// ERP's literal "Logged In" reply it sets the auth flag cookie the dashboard
// routing reads; the cookie is deliberately neither Secure nor HttpOnly and
// is not a security boundary. Any other reply passes through as a 401.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Usr string `json:"usr"`
		Pwd string `json:"pwd"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid login payload", middleware.GetRequestID(r.Context()))
		return
	}

	result, err := h.erp.Login(r.Context(), payload.Usr, payload.Pwd)
	if err != nil {
		slog.Error("erp login failed", "err", err)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "login service unavailable", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.LoggedIn {
		http.SetCookie(w, &http.Cookie{
			Name:     "auth",
			Value:    "yes",
			Path:     "/",
			HttpOnly: false,
		})
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusUnauthorized)
	}
	_, _ = w.Write(result.Body)
}
