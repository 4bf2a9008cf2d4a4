package leavehandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/grid"
	"hrdash/internal/domain/leave"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	svc             *leave.Service
	defaultPageSize int
}

func NewHandler(svc *leave.Service, defaultPageSize int) *Handler {
	return &Handler{svc: svc, defaultPageSize: defaultPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/leave-balances", h.handleBalances)
}

var tableColumns = []grid.Column[leave.Balance]{
	{Key: "employee_name", Label: "Employee", Sortable: true},
	{Key: "department", Label: "Department", Sortable: true},
	{Key: "leave_type", Label: "Leave Type", Sortable: true},
	{Key: "total_allocated", Label: "Allocated", Sortable: true},
	{Key: "used", Label: "Used", Sortable: true},
	{Key: "remaining", Label: "Remaining", Sortable: true},
	{Key: "on_leave", Label: "Status", Sortable: true},
}

func renderCard(b leave.Balance) grid.Card {
	status := "Available"
	if b.OnLeave {
		status = "On Leave"
	}
	return grid.Card{
		Title:    b.EmployeeName,
		Subtitle: b.Department,
		Status:   status,
		Details: map[string]string{
			"leave_type":     b.LeaveType,
			"allocated":      strconv.FormatFloat(b.Allocated, 'f', -1, 64),
			"used":           strconv.FormatFloat(b.Used, 'f', -1, 64),
			"remaining":      strconv.FormatFloat(b.Remaining, 'f', -1, 64),
			"remaining_tier": leave.RemainingTier(b.Allocated, b.Used),
		},
	}
}

func (h *Handler) handleBalances(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	params := shared.ParseGridParams(r, leave.SearchFields, leave.BucketFields, h.defaultPageSize)

	records, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("leave balances fetch failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load leave balances.", requestID)
		return
	}

	buckets := grid.Buckets(records, leave.BucketFields...)
	filtered := grid.Apply(records, params.Query)
	page := grid.Paginate(filtered, params.PageSize, params.Page)
	state := grid.ViewState{EmptyMessage: "No leave balance records found"}

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
