package overview

import (
	"sort"

	"hrdash/internal/domain/employee"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/workhours"
)

// fullDayHours is the threshold separating full-day from part-time attendance.
const fullDayHours = 8

// maxDepartments caps the department insight list to the largest teams.
const maxDepartments = 6

// Alert codes raised by the overview thresholds.
const (
	AlertHighLeaveUsage = "high_leave_usage"
	AlertLowAttendance  = "low_attendance"
	AlertAllClear       = "all_clear"
	AlertNoData         = "no_data"
)

// Metrics is the headline block of the overview: headcount, attendance for the
// selected date and leave utilization across all balances.
type Metrics struct {
	TotalEmployees   int     `json:"totalEmployees"`
	ActiveEmployees  int     `json:"activeEmployees"`
	OnLeaveToday     int     `json:"onLeaveToday"`
	PresentToday     int     `json:"presentToday"`
	FullDayWorkers   int     `json:"fullDayWorkers"`
	PartTimeWorkers  int     `json:"partTimeWorkers"`
	TotalHours       float64 `json:"totalHours"`
	AvgHours         float64 `json:"avgHours"`
	AttendanceRate   float64 `json:"attendanceRate"`
	FullDayRate      float64 `json:"fullDayRate"`
	LeaveAllocated   float64 `json:"leaveAllocated"`
	LeaveUsed        float64 `json:"leaveUsed"`
	LeaveUtilization float64 `json:"leaveUtilization"`
}

// DepartmentInsight is one department's slice of the workforce with its
// presence and on-leave counts for the selected date.
type DepartmentInsight struct {
	Department string  `json:"department"`
	Headcount  int     `json:"headcount"`
	Share      float64 `json:"share"`
	Present    int     `json:"present"`
	OnLeave    int     `json:"onLeave"`
}

// LeaveTypeUsage aggregates all balances of one leave type.
type LeaveTypeUsage struct {
	LeaveType   string  `json:"leaveType"`
	Allocated   float64 `json:"allocated"`
	Used        float64 `json:"used"`
	Remaining   float64 `json:"remaining"`
	Employees   int     `json:"employees"`
	Utilization float64 `json:"utilization"`
}

// BuildMetrics derives the headline metrics from the three report snapshots.
// AvgHours is per attendance row; AttendanceRate is presence against total
// headcount and FullDayRate against those present.
func BuildMetrics(employees []employee.Employee, balances []leave.Balance, hours []workhours.WorkHour) Metrics {
	m := Metrics{TotalEmployees: len(employees)}

	for _, e := range employees {
		if e.Status == "Active" {
			m.ActiveEmployees++
		}
	}

	onLeave := make(map[string]struct{})
	for _, b := range balances {
		m.LeaveAllocated += b.Allocated
		m.LeaveUsed += b.Used
		if b.OnLeave {
			onLeave[balanceKey(b)] = struct{}{}
		}
	}
	m.OnLeaveToday = len(onLeave)
	if m.LeaveAllocated > 0 {
		m.LeaveUtilization = m.LeaveUsed / m.LeaveAllocated * 100
	}

	for _, h := range hours {
		m.TotalHours += h.TotalHours
		if h.TimeIn != "" {
			m.PresentToday++
		}
		switch {
		case h.TotalHours >= fullDayHours:
			m.FullDayWorkers++
		case h.TotalHours > 0:
			m.PartTimeWorkers++
		}
	}
	if len(hours) > 0 {
		m.AvgHours = m.TotalHours / float64(len(hours))
	}
	if m.TotalEmployees > 0 {
		m.AttendanceRate = float64(m.PresentToday) / float64(m.TotalEmployees) * 100
	}
	if m.PresentToday > 0 {
		m.FullDayRate = float64(m.FullDayWorkers) / float64(m.PresentToday) * 100
	}
	return m
}

// DepartmentInsights breaks the workforce down by department, joined with
// presence and on-leave counts, largest departments first, capped at six.
func DepartmentInsights(employees []employee.Employee, balances []leave.Balance, hours []workhours.WorkHour) []DepartmentInsight {
	counts := make(map[string]*DepartmentInsight)
	for _, e := range employees {
		insight, ok := counts[e.Department]
		if !ok {
			insight = &DepartmentInsight{Department: e.Department}
			counts[e.Department] = insight
		}
		insight.Headcount++
	}
	for _, b := range balances {
		if insight, ok := counts[b.Department]; ok && b.OnLeave {
			insight.OnLeave++
		}
	}
	for _, h := range hours {
		if insight, ok := counts[h.Department]; ok && h.TimeIn != "" {
			insight.Present++
		}
	}

	out := make([]DepartmentInsight, 0, len(counts))
	for _, insight := range counts {
		if len(employees) > 0 {
			insight.Share = float64(insight.Headcount) / float64(len(employees)) * 100
		}
		out = append(out, *insight)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Headcount != out[j].Headcount {
			return out[i].Headcount > out[j].Headcount
		}
		return out[i].Department < out[j].Department
	})
	if len(out) > maxDepartments {
		out = out[:maxDepartments]
	}
	return out
}

// LeaveTypeBreakdown aggregates balances per leave type, largest allocations
// first. Employees counts distinct holders of the type.
func LeaveTypeBreakdown(balances []leave.Balance) []LeaveTypeUsage {
	type group struct {
		usage   LeaveTypeUsage
		holders map[string]struct{}
	}
	groups := make(map[string]*group)
	for _, b := range balances {
		g, ok := groups[b.LeaveType]
		if !ok {
			g = &group{usage: LeaveTypeUsage{LeaveType: b.LeaveType}, holders: make(map[string]struct{})}
			groups[b.LeaveType] = g
		}
		g.usage.Allocated += b.Allocated
		g.usage.Used += b.Used
		g.usage.Remaining += b.Remaining
		g.holders[balanceKey(b)] = struct{}{}
	}

	out := make([]LeaveTypeUsage, 0, len(groups))
	for _, g := range groups {
		g.usage.Employees = len(g.holders)
		if g.usage.Allocated > 0 {
			g.usage.Utilization = g.usage.Used / g.usage.Allocated * 100
		}
		out = append(out, g.usage)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Allocated != out[j].Allocated {
			return out[i].Allocated > out[j].Allocated
		}
		return out[i].LeaveType < out[j].LeaveType
	})
	return out
}

// Alerts maps the metrics onto the dashboard's threshold warnings: heavy leave
// usage above 80% utilization, attendance below 70%, the all-clear when
// attendance is at least 85% with utilization at most 70%, and a no-data
// marker for an empty directory.
func Alerts(m Metrics) []string {
	var alerts []string
	if m.LeaveUtilization > 80 {
		alerts = append(alerts, AlertHighLeaveUsage)
	}
	if m.AttendanceRate < 70 {
		alerts = append(alerts, AlertLowAttendance)
	}
	if m.AttendanceRate >= 85 && m.LeaveUtilization <= 70 {
		alerts = append(alerts, AlertAllClear)
	}
	if m.TotalEmployees == 0 {
		alerts = append(alerts, AlertNoData)
	}
	return alerts
}

// balanceKey identifies one employee across balance rows: the id when the
// upstream supplies one, the display name otherwise.
func balanceKey(b leave.Balance) string {
	if b.EmployeeID != "" {
		return b.EmployeeID
	}
	return b.EmployeeName
}
