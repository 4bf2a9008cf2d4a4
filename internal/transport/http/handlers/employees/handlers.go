package employeehandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/employee"
	"hrdash/internal/domain/grid"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	svc             *employee.Service
	defaultPageSize int
}

func NewHandler(svc *employee.Service, defaultPageSize int) *Handler {
	return &Handler{svc: svc, defaultPageSize: defaultPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/employees", h.handleDirectory)
}

var tableColumns = []grid.Column[employee.Employee]{
	{Key: "employee", Label: "Employee ID", Sortable: true},
	{Key: "employee_name", Label: "Name", Sortable: true},
	{Key: "department", Label: "Department", Sortable: true},
	{Key: "designation", Label: "Designation", Sortable: true},
	{Key: "status", Label: "Status", Sortable: true},
	{Key: "branch", Label: "Branch", Sortable: true},
	{Key: "company_email", Label: "Email", Sortable: false},
	{Key: "cell_number", Label: "Phone", Sortable: false},
	{Key: "date_of_joining", Label: "Joined", Sortable: true},
}

func renderCard(e employee.Employee) grid.Card {
	return grid.Card{
		Title:    e.Name,
		Subtitle: e.ID + " - " + e.Department,
		Status:   e.Status,
		Details: map[string]string{
			"designation": e.Designation,
			"company":     e.Company,
			"branch":      e.Branch,
			"email":       e.CompanyEmail,
			"phone":       e.CellNumber,
			"joined":      e.DateOfJoining,
		},
	}
}

func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	params := shared.ParseGridParams(r, employee.SearchFields, employee.BucketFields, h.defaultPageSize)

	records, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("employee directory fetch failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load employee data. Please try again.", requestID)
		return
	}

	buckets := grid.Buckets(records, employee.BucketFields...)
	filtered := grid.Apply(records, params.Query)
	page := grid.Paginate(filtered, params.PageSize, params.Page)
	state := grid.ViewState{EmptyMessage: "No employees found"}

	data := map[string]any{
		"buckets":    buckets,
		"pagination": shared.MetaOf(page),
	}
	if params.View == shared.ViewCards {
		data["cards"] = grid.Cards(page, renderCard, state)
	} else {
		data["table"] = grid.Table(page, tableColumns, state)
	}
	api.Success(w, data, requestID)
}
