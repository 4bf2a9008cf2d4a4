package workhours

import "strconv"

// WorkHour is one per-day attendance row from the ERP check-in API. TimeIn and
// TimeOut are fixed-width HH:MM wall-clock strings, not durations. TotalHours
// is supplied by the backend independently of the clock times; both it and
// ClockedIn are carried verbatim and the display policy is the consumer's.
type WorkHour struct {
	EmployeeID  string  `json:"employee"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	Date        string  `json:"date,omitempty"`
	TimeIn      string  `json:"time_in"`
	TimeOut     string  `json:"time_out"`
	TotalHours  float64 `json:"total_hours"`
	ClockedIn   bool    `json:"is_currently_clocked_in,omitempty"`
}

// Field implements grid.Record for the work-hour views.
func (w WorkHour) Field(name string) (string, bool) {
	switch name {
	case "employee":
		return w.EmployeeID, true
	case "name":
		return w.Name, true
	case "department":
		return w.Department, true
	case "designation":
		return w.Designation, true
	case "date":
		return w.Date, true
	case "time_in":
		return w.TimeIn, true
	case "time_out":
		return w.TimeOut, true
	case "total_hours":
		return strconv.FormatFloat(w.TotalHours, 'f', 2, 64), true
	case "status":
		return StatusLabel(w), true
	default:
		return "", false
	}
}

// PeriodSummary is the derived per-employee rollup for a multi-day range.
// Computed fresh from the raw per-day rows on every fetch or filter change,
// never persisted.
type PeriodSummary struct {
	EmployeeID  string  `json:"employee"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	DaysWorked  int     `json:"days_worked"`
	FirstIn     string  `json:"time_in"`
	LastOut     string  `json:"time_out"`
	TotalHours  float64 `json:"total_hours"`
	AvgPerDay   float64 `json:"average_hours_per_day"`
	ClockedIn   bool    `json:"is_currently_clocked_in,omitempty"`
}

// Field implements grid.Record for the range view.
func (p PeriodSummary) Field(name string) (string, bool) {
	switch name {
	case "employee":
		return p.EmployeeID, true
	case "name":
		return p.Name, true
	case "department":
		return p.Department, true
	case "designation":
		return p.Designation, true
	case "days_worked":
		return strconv.Itoa(p.DaysWorked), true
	case "time_in":
		return p.FirstIn, true
	case "time_out":
		return p.LastOut, true
	case "total_hours":
		return strconv.FormatFloat(p.TotalHours, 'f', 2, 64), true
	case "average_hours_per_day":
		return strconv.FormatFloat(p.AvgPerDay, 'f', 2, 64), true
	default:
		return "", false
	}
}

// SearchFields are the free-text search targets for the work-hour views.
var SearchFields = []string{"name", "employee", "department", "designation"}

// BucketFields are the categorical fields the work-hour views filter on.
var BucketFields = []string{"department", "designation"}
