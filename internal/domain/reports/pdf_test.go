package reports

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"
)

func fixedClock() time.Time {
	return time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC)
}

func sampleInput(isRange bool) Input {
	rows := []Row{
		{EmployeeID: "EMP-001", Name: "Alice Wanjiru", Department: "Engineering", Designation: "Developer", TimeIn: "08:30", TimeOut: "17:00", TotalHours: 8.5, Status: "Clocked Out"},
		{EmployeeID: "EMP-002", Name: "Brian Otieno", Department: "Finance", Designation: "Accountant", TimeIn: "09:00", TotalHours: 4, Status: "Clocked In"},
	}
	in := Input{
		Rows:      rows,
		StartDate: "2026-08-01",
		EndDate:   "2026-08-01",
	}
	if isRange {
		in.EndDate = "2026-08-28"
		in.IsRange = true
		for i := range in.Rows {
			in.Rows[i].DaysWorked = 5
			in.Rows[i].AvgPerDay = in.Rows[i].TotalHours / 5
		}
	}
	summary := Summarize(in.Rows)
	in.Summary = &summary
	return in
}

func TestWorkHoursPDF(t *testing.T) {
	gen := NewGenerator("BizSmart Enterprises Ltd", fixedClock)

	doc, filename, err := gen.WorkHoursPDF(sampleInput(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "work_hours_report_2026-08-01.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
}

func TestWorkHoursPDFFilenames(t *testing.T) {
	gen := NewGenerator("BizSmart Enterprises Ltd", fixedClock)

	tests := []struct {
		name   string
		mutate func(*Input)
		want   string
	}{
		{"range", func(in *Input) {}, "work_hours_report_2026-08-01_to_2026-08-28.pdf"},
		{"range with filter", func(in *Input) {
			in.Filters = map[string]string{"department": "Engineering"}
		}, "work_hours_report_2026-08-01_to_2026-08-28_filtered.pdf"},
		{"sentinel filter ignored", func(in *Input) {
			in.Filters = map[string]string{"department": "all"}
		}, "work_hours_report_2026-08-01_to_2026-08-28.pdf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := sampleInput(true)
			tc.mutate(&in)
			_, filename, err := gen.WorkHoursPDF(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filename != tc.want {
				t.Fatalf("filename = %q, want %q", filename, tc.want)
			}
		})
	}
}

func TestWorkHoursPDFNoData(t *testing.T) {
	gen := NewGenerator("BizSmart Enterprises Ltd", fixedClock)
	_, _, err := gen.WorkHoursPDF(Input{StartDate: "2026-08-01", EndDate: "2026-08-01"})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
}

func TestWorkHoursPDFDeterministic(t *testing.T) {
	gen := NewGenerator("BizSmart Enterprises Ltd", fixedClock)

	a, _, err := gen.WorkHoursPDF(sampleInput(true))
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	b, _, err := gen.WorkHoursPDF(sampleInput(true))
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same input and clock produced different documents")
	}
}

func TestEmployeeAttendancePDF(t *testing.T) {
	gen := NewGenerator("BizSmart Enterprises Ltd", fixedClock)
	days := []Row{
		{EmployeeID: "EMP-001", Name: "Alice Wanjiru", Date: "2026-08-03", TimeIn: "08:30", TimeOut: "17:00", TotalHours: 8.5, Status: "Clocked Out"},
		{EmployeeID: "EMP-001", Name: "Alice Wanjiru", Date: "2026-08-04", TimeIn: "08:45", TotalHours: 3, Status: "Clocked In"},
	}

	doc, filename, err := gen.EmployeeAttendancePDF("EMP-001", "Alice Wanjiru", days, "2026-08-01", "2026-08-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "EMP-001_attendance_2026-08-01_to_2026-08-28.pdf" {
		t.Fatalf("filename = %q", filename)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}

	_, _, err = gen.EmployeeAttendancePDF("EMP-001", "Alice Wanjiru", nil, "2026-08-01", "2026-08-28")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData", err)
	}
}

func TestDataTableErrorWrapped(t *testing.T) {
	gen := NewGenerator("BizSmart Enterprises Ltd", fixedClock)
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetError(errors.New("boom"))

	err := gen.dataTable(pdf, workHoursColumns(false), []Row{{EmployeeID: "EMP-001"}})
	if err == nil || !strings.Contains(err.Error(), "failed to create main data table") {
		t.Fatalf("table errors should carry the table prefix, got %v", err)
	}
	if strings.Contains(err.Error(), "failed to render document") {
		t.Fatalf("table errors must be distinguishable from render errors: %v", err)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2026-08-01"); got != "Aug 1, 2026" {
		t.Fatalf("formatDate = %q", got)
	}
	if got := formatDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("unparseable dates should pass through, got %q", got)
	}
}
