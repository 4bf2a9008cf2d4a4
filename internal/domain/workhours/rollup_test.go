package workhours

import (
	"math"
	"reflect"
	"testing"
)

func TestRollup(t *testing.T) {
	daily := []WorkHour{
		{EmployeeID: "EMP-002", Name: "Brian Otieno", Date: "2026-08-03", TimeIn: "09:00", TimeOut: "17:00", TotalHours: 8},
		{EmployeeID: "EMP-001", Name: "Alice Wanjiru", Department: "Engineering", Date: "2026-08-03", TimeIn: "08:45", TimeOut: "13:00", TotalHours: 4},
		{EmployeeID: "EMP-001", Name: "Alice Wanjiru", Department: "Engineering", Date: "2026-08-04", TimeIn: "08:30", TimeOut: "12:15", TotalHours: 3.5},
		{EmployeeID: "EMP-001", Name: "Alice Wanjiru", Department: "Engineering", Date: "2026-08-05", TimeIn: "09:10", TimeOut: "", TotalHours: 8},
	}

	got := Rollup(daily)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	alice := got[0]
	if alice.EmployeeID != "EMP-001" {
		t.Fatalf("output not sorted by employee id: %v", got)
	}
	if alice.DaysWorked != 3 {
		t.Fatalf("days worked = %d, want 3", alice.DaysWorked)
	}
	if alice.TotalHours != 15.5 {
		t.Fatalf("total hours = %v, want 15.5", alice.TotalHours)
	}
	if math.Abs(alice.AvgPerDay-15.5/3) > 1e-9 {
		t.Fatalf("avg per day = %v", alice.AvgPerDay)
	}
	if alice.FirstIn != "08:30" || alice.LastOut != "13:00" {
		t.Fatalf("clock bounds = %s-%s, want 08:30-13:00", alice.FirstIn, alice.LastOut)
	}
	if !alice.ClockedIn {
		t.Fatalf("open session on the last day should mark the period clocked in")
	}

	brian := got[1]
	if brian.DaysWorked != 1 || brian.TotalHours != 8 || brian.ClockedIn {
		t.Fatalf("brian summary = %+v", brian)
	}
}

func TestRollupOrderIndependent(t *testing.T) {
	rows := []WorkHour{
		{EmployeeID: "EMP-001", TimeIn: "08:00", TimeOut: "12:00", TotalHours: 4},
		{EmployeeID: "EMP-002", TimeIn: "10:00", TimeOut: "15:00", TotalHours: 5},
		{EmployeeID: "EMP-001", TimeIn: "07:30", TimeOut: "16:00", TotalHours: 8.5},
	}
	reversed := []WorkHour{rows[2], rows[1], rows[0]}

	a := Rollup(rows)
	b := Rollup(reversed)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("rollup depends on input order:\n%v\n%v", a, b)
	}
}

func TestRollupEmpty(t *testing.T) {
	if got := Rollup(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
