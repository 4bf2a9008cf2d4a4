package workhourshandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/grid"
	"hrdash/internal/domain/reports"
	"hrdash/internal/domain/workhours"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	svc             *workhours.Service
	defaultPageSize int
}

func NewHandler(svc *workhours.Service, defaultPageSize int) *Handler {
	return &Handler{svc: svc, defaultPageSize: defaultPageSize}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/work-hours", h.handleReport)
}

var dailyColumns = []grid.Column[workhours.WorkHour]{
	{Key: "employee", Label: "Employee ID", Sortable: true},
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "department", Label: "Department", Sortable: true},
	{Key: "designation", Label: "Designation", Sortable: true},
	{Key: "status", Label: "Status"},
	{Key: "time_in", Label: "Time In", Sortable: true},
	{Key: "time_out", Label: "Time Out", Sortable: true},
	{Key: "total_hours", Label: "Total Hours", Sortable: true},
}

var periodColumns = []grid.Column[workhours.PeriodSummary]{
	{Key: "employee", Label: "Employee ID", Sortable: true},
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "days_worked", Label: "Days", Sortable: true},
	{Key: "department", Label: "Department", Sortable: true},
	{Key: "designation", Label: "Designation", Sortable: true},
	{Key: "time_in", Label: "First In", Sortable: true},
	{Key: "time_out", Label: "Last Out", Sortable: true},
	{Key: "total_hours", Label: "Total Hours", Sortable: true},
	{Key: "average_hours_per_day", Label: "Avg/Day", Sortable: true},
}

func renderDailyCard(w workhours.WorkHour) grid.Card {
	timeIn, _ := w.Field("time_in")
	timeOut, _ := w.Field("time_out")
	hours, _ := w.Field("total_hours")
	return grid.Card{
		Title:    w.Name,
		Subtitle: w.EmployeeID + " - " + w.Department,
		Status:   workhours.StatusLabel(w),
		Details: map[string]string{
			"designation": w.Designation,
			"time_in":     timeIn,
			"time_out":    timeOut,
			"total_hours": hours,
		},
	}
}

func renderPeriodCard(p workhours.PeriodSummary) grid.Card {
	days, _ := p.Field("days_worked")
	hours, _ := p.Field("total_hours")
	avg, _ := p.Field("average_hours_per_day")
	status := "Clocked Out"
	if p.ClockedIn {
		status = "Clocked In"
	}
	return grid.Card{
		Title:    p.Name,
		Subtitle: p.EmployeeID + " - " + p.Department,
		Status:   status,
		Details: map[string]string{
			"designation": p.Designation,
			"days_worked": days,
			"first_in":    p.FirstIn,
			"last_out":    p.LastOut,
			"total_hours": hours,
			"avg_per_day": avg,
		},
	}
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	params := shared.ParseGridParams(r, workhours.SearchFields, workhours.BucketFields, h.defaultPageSize)

	start, end, isRange := shared.ParsePeriod(r)
	if err := workhours.ValidateRange(start, end); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), requestID)
		return
	}

	if isRange {
		h.rangeReport(w, r, params, start, end, requestID)
		return
	}
	h.dailyReport(w, r, params, start, requestID)
}

func (h *Handler) dailyReport(w http.ResponseWriter, r *http.Request, params shared.GridParams, date, requestID string) {
	rows, err := h.svc.ForDate(r.Context(), date)
	if err != nil {
		slog.Error("work hours fetch failed", "err", err, "date", date, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load work hours data.", requestID)
		return
	}

	buckets := grid.Buckets(rows, workhours.BucketFields...)
	filtered := grid.Apply(rows, params.Query)
	page := grid.Paginate(filtered, params.PageSize, params.Page)
	state := grid.ViewState{EmptyMessage: "No work hours data found for " + date}

	data := map[string]any{
		"mode":       "single",
		"date":       date,
		"buckets":    buckets,
		"pagination": shared.MetaOf(page),
		"summary":    reports.Summarize(reports.FromDaily(filtered)),
	}
	if params.View == shared.ViewCards {
		data["cards"] = grid.Cards(page, renderDailyCard, state)
	} else {
		data["table"] = grid.Table(page, dailyColumns, state)
	}
	api.Success(w, data, requestID)
}

func (h *Handler) rangeReport(w http.ResponseWriter, r *http.Request, params shared.GridParams, start, end, requestID string) {
	rows, err := h.svc.ForRange(r.Context(), start, end)
	if err != nil {
		slog.Error("work hours range fetch failed", "err", err, "start", start, "end", end, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load work hours data.", requestID)
		return
	}

	summaries := workhours.Rollup(rows)
	buckets := grid.Buckets(summaries, workhours.BucketFields...)
	filtered := grid.Apply(summaries, params.Query)
	page := grid.Paginate(filtered, params.PageSize, params.Page)
	state := grid.ViewState{EmptyMessage: "No work hours data found for " + start + " to " + end}

	data := map[string]any{
		"mode":       "range",
		"start":      start,
		"end":        end,
		"buckets":    buckets,
		"pagination": shared.MetaOf(page),
		"summary":    reports.Summarize(reports.FromPeriod(filtered)),
	}
	if params.View == shared.ViewCards {
		data["cards"] = grid.Cards(page, renderPeriodCard, state)
	} else {
		data["table"] = grid.Table(page, periodColumns, state)
	}
	api.Success(w, data, requestID)
}
