package shared

import (
	"net/http"
	"strconv"
	"time"

	"hrdash/internal/domain/grid"
)

// View modes offered by every report page.
const (
	ViewTable = "table"
	ViewCards = "cards"
)

// Page-size options are enumerated per view mode; anything else snaps to the
// mode's default.
var (
	tablePageSizes = []int{10, 25, 50, 100}
	cardPageSizes  = []int{4, 8, 12, 16}
)

const defaultCardPageSize = 8

// GridParams is the grid state parsed from a report request's query string.
type GridParams struct {
	Query    grid.Query
	Page     int
	PageSize int
	View     string
}

// ParseGridParams reads q, per-field filters, sort, dir, page, pageSize and
// view from the request. Filters come from the named filterFields only;
// unknown parameters are ignored.
func ParseGridParams(r *http.Request, searchFields, filterFields []string, defaultTableSize int) GridParams {
	values := r.URL.Query()

	view := values.Get("view")
	if view != ViewCards {
		view = ViewTable
	}

	filters := make(map[string]string, len(filterFields))
	for _, field := range filterFields {
		if raw := values.Get(field); raw != "" {
			filters[field] = raw
		}
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	allowed, fallback := tablePageSizes, defaultTableSize
	if view == ViewCards {
		allowed, fallback = cardPageSizes, defaultCardPageSize
	}
	pageSize := fallback
	if raw := values.Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			for _, option := range allowed {
				if v == option {
					pageSize = v
					break
				}
			}
		}
	}

	return GridParams{
		Query: grid.Query{
			Search:       values.Get("q"),
			SearchFields: searchFields,
			Filters:      filters,
			SortKey:      values.Get("sort"),
			SortDesc:     values.Get("dir") == "desc",
		},
		Page:     page,
		PageSize: pageSize,
		View:     view,
	}
}

// ParsePeriod reads the reporting period from the query string. A bare date
// (or nothing, meaning today) is a single-day report; distinct start and end
// dates make it a range.
func ParsePeriod(r *http.Request) (start, end string, isRange bool) {
	values := r.URL.Query()
	start = values.Get("start")
	end = values.Get("end")
	if start == "" && end == "" {
		date := values.Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		return date, date, false
	}
	if start == "" {
		start = end
	}
	if end == "" {
		end = start
	}
	return start, end, start != end
}
