package workhours

import "sort"

// Rollup groups per-day rows by employee id and derives the period totals:
// summed hours, day count, lexicographic earliest check-in and latest
// check-out (valid because the HH:MM format is fixed-width), any-true
// clocked-in flag and the running average. Grouping keys on identity, so the
// result is independent of input order; output is sorted by employee id.
// Groups with no non-empty clock times leave FirstIn/LastOut empty.
func Rollup(daily []WorkHour) []PeriodSummary {
	groups := make(map[string]*PeriodSummary)
	for _, row := range daily {
		summary, ok := groups[row.EmployeeID]
		if !ok {
			summary = &PeriodSummary{
				EmployeeID:  row.EmployeeID,
				Name:        row.Name,
				Department:  row.Department,
				Designation: row.Designation,
			}
			groups[row.EmployeeID] = summary
		}

		summary.DaysWorked++
		summary.TotalHours += row.TotalHours
		if row.TimeIn != "" && (summary.FirstIn == "" || row.TimeIn < summary.FirstIn) {
			summary.FirstIn = row.TimeIn
		}
		if row.TimeOut != "" && (summary.LastOut == "" || row.TimeOut > summary.LastOut) {
			summary.LastOut = row.TimeOut
		}
		if IsClockedIn(row) {
			summary.ClockedIn = true
		}
	}

	out := make([]PeriodSummary, 0, len(groups))
	for _, summary := range groups {
		if summary.DaysWorked > 0 {
			summary.AvgPerDay = summary.TotalHours / float64(summary.DaysWorked)
		}
		out = append(out, *summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}
