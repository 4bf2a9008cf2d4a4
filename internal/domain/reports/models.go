package reports

import (
	"sort"

	"hrdash/internal/domain/workhours"
)

// Row is one line of an export document. Single-day and range reports share
// the shape; DaysWorked/AvgPerDay are only meaningful when IsRange is set on
// the input.
type Row struct {
	EmployeeID  string
	Name        string
	Department  string
	Designation string
	Date        string
	TimeIn      string
	TimeOut     string
	TotalHours  float64
	DaysWorked  int
	AvgPerDay   float64
	Status      string
}

// SummaryStats is the metric block rendered above the main table.
type SummaryStats struct {
	TotalEmployees      int     `json:"totalEmployees"`
	TotalHours          float64 `json:"totalHours"`
	CurrentlyClocked    int     `json:"currentlyClocked"`
	AvgHoursPerEmployee float64 `json:"avgHoursPerEmployee"`
}

// Input is everything an export needs: the filtered (not paginated) rows, the
// covered period, the active filters for the header block and the summary.
type Input struct {
	Rows      []Row
	StartDate string
	EndDate   string
	IsRange   bool
	Filters   map[string]string
	Summary   *SummaryStats
}

// FromDaily converts single-day attendance rows for export.
func FromDaily(rows []workhours.WorkHour) []Row {
	out := make([]Row, 0, len(rows))
	for _, w := range rows {
		out = append(out, Row{
			EmployeeID:  w.EmployeeID,
			Name:        w.Name,
			Department:  w.Department,
			Designation: w.Designation,
			Date:        w.Date,
			TimeIn:      w.TimeIn,
			TimeOut:     w.TimeOut,
			TotalHours:  w.TotalHours,
			Status:      workhours.StatusLabel(w),
		})
	}
	return out
}

// FromPeriod converts rolled-up range summaries for export.
func FromPeriod(summaries []workhours.PeriodSummary) []Row {
	out := make([]Row, 0, len(summaries))
	for _, p := range summaries {
		status := workhours.StatusClockedOut
		if p.ClockedIn {
			status = workhours.StatusClockedIn
		} else if p.LastOut == "" {
			status = workhours.StatusNoCheckIn
		}
		out = append(out, Row{
			EmployeeID:  p.EmployeeID,
			Name:        p.Name,
			Department:  p.Department,
			Designation: p.Designation,
			TimeIn:      p.FirstIn,
			TimeOut:     p.LastOut,
			TotalHours:  p.TotalHours,
			DaysWorked:  p.DaysWorked,
			AvgPerDay:   p.AvgPerDay,
			Status:      status,
		})
	}
	return out
}

// Summarize computes the metric block from export rows: distinct employees,
// summed hours, open sessions and the per-employee average.
func Summarize(rows []Row) SummaryStats {
	employees := make(map[string]struct{}, len(rows))
	stats := SummaryStats{}
	for _, row := range rows {
		employees[row.EmployeeID] = struct{}{}
		stats.TotalHours += row.TotalHours
		if row.Status == workhours.StatusClockedIn {
			stats.CurrentlyClocked++
		}
	}
	stats.TotalEmployees = len(employees)
	if stats.TotalEmployees > 0 {
		stats.AvgHoursPerEmployee = stats.TotalHours / float64(stats.TotalEmployees)
	}
	return stats
}

// activeFilters returns the non-sentinel filters in stable key order.
func activeFilters(filters map[string]string) [][2]string {
	keys := make([]string, 0, len(filters))
	for key, value := range filters {
		if value == "" || value == "all" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, [2]string{key, filters[key]})
	}
	return out
}
