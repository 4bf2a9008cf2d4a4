package reportshandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/grid"
	"hrdash/internal/domain/reports"
	"hrdash/internal/domain/workhours"
	"hrdash/internal/transport/http/api"
	"hrdash/internal/transport/http/middleware"
	"hrdash/internal/transport/http/shared"
)

type Handler struct {
	workhours *workhours.Service
	exports   *reports.Service
}

func NewHandler(whs *workhours.Service, exports *reports.Service) *Handler {
	return &Handler{workhours: whs, exports: exports}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/work-hours/export", h.handleWorkHoursExport)
	r.Get("/employees/{id}/attendance/export", h.handleAttendanceExport)
}

// handleWorkHoursExport streams the work-hours report as a document. The
// export covers the filtered result set, never just the visible page, so the
// grid parameters are applied but pagination is not.
func (h *Handler) handleWorkHoursExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	format := r.URL.Query().Get("format")
	if format == "" {
		format = reports.FormatPDF
	}
	if format != reports.FormatPDF && format != reports.FormatXLSX {
		api.Fail(w, http.StatusBadRequest, "bad_request", "unsupported export format: "+format, requestID)
		return
	}

	params := shared.ParseGridParams(r, workhours.SearchFields, workhours.BucketFields, 0)
	start, end, isRange := shared.ParsePeriod(r)
	if err := workhours.ValidateRange(start, end); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), requestID)
		return
	}

	in, err := h.buildInput(r, params, start, end, isRange)
	if err != nil {
		slog.Error("work hours export fetch failed", "err", err, "start", start, "end", end, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load work hours data.", requestID)
		return
	}

	doc, filename, err := h.exports.WorkHoursExport(format, in)
	if err != nil {
		h.failExport(w, err, requestID)
		return
	}
	streamDocument(w, format, filename, doc)
}

func (h *Handler) buildInput(r *http.Request, params shared.GridParams, start, end string, isRange bool) (reports.Input, error) {
	var rows []reports.Row
	if isRange {
		daily, err := h.workhours.ForRange(r.Context(), start, end)
		if err != nil {
			return reports.Input{}, err
		}
		filtered := grid.Apply(workhours.Rollup(daily), params.Query)
		rows = reports.FromPeriod(filtered)
	} else {
		daily, err := h.workhours.ForDate(r.Context(), start)
		if err != nil {
			return reports.Input{}, err
		}
		rows = reports.FromDaily(grid.Apply(daily, params.Query))
	}

	filters := make(map[string]string, len(params.Query.Filters)+1)
	for key, value := range params.Query.Filters {
		filters[key] = value
	}
	if params.Query.Search != "" {
		filters["search"] = params.Query.Search
	}

	summary := reports.Summarize(rows)
	return reports.Input{
		Rows:      rows,
		StartDate: start,
		EndDate:   end,
		IsRange:   isRange,
		Filters:   filters,
		Summary:   &summary,
	}, nil
}

// handleAttendanceExport generates one employee's attendance sheet over a
// date range.
func (h *Handler) handleAttendanceExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "id")

	start, end, _ := shared.ParsePeriod(r)
	if err := workhours.ValidateRange(start, end); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_range", err.Error(), requestID)
		return
	}

	daily, err := h.workhours.ForRange(r.Context(), start, end)
	if err != nil {
		slog.Error("attendance export fetch failed", "err", err, "employee", employeeID, "requestId", requestID)
		api.Fail(w, http.StatusBadGateway, "erp_unavailable", "Failed to load work hours data.", requestID)
		return
	}

	name := employeeID
	days := make([]workhours.WorkHour, 0, len(daily))
	for _, d := range daily {
		if d.EmployeeID != employeeID {
			continue
		}
		if d.Name != "" {
			name = d.Name
		}
		days = append(days, d)
	}

	doc, filename, err := h.exports.EmployeeAttendanceExport(employeeID, name, reports.FromDaily(days), start, end)
	if err != nil {
		h.failExport(w, err, requestID)
		return
	}
	streamDocument(w, reports.FormatPDF, filename, doc)
}

func (h *Handler) failExport(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, reports.ErrNoData):
		api.Fail(w, http.StatusUnprocessableEntity, "no_data", err.Error(), requestID)
	case errors.Is(err, reports.ErrExportBusy):
		api.Fail(w, http.StatusConflict, "export_busy", err.Error(), requestID)
	default:
		slog.Error("export generation failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "export_failed", "Failed to generate export.", requestID)
	}
}

func streamDocument(w http.ResponseWriter, format, filename string, doc []byte) {
	contentType := "application/pdf"
	if format == reports.FormatXLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}
