package reports

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Brand palette used by the report documents.
var (
	headerFill = [3]int{23, 80, 59}    // brand green
	stripeFill = [3]int{248, 253, 249} // light green tint
)

const (
	pageMargin   = 15.0
	footerHeight = 20.0
	rowHeight    = 8.0
)

// Generator lays out report documents. The clock is injectable so output is
// deterministic in tests apart from the embedded generation timestamp.
type Generator struct {
	company string
	now     func() time.Time
}

func NewGenerator(company string, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{company: company, now: now}
}

type pdfColumn struct {
	header string
	width  float64
	align  string
	value  func(Row) string
}

func workHoursColumns(isRange bool) []pdfColumn {
	hours := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) + "h" }
	cell := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}

	if !isRange {
		return []pdfColumn{
			{"Employee ID", 25, "L", func(r Row) string { return r.EmployeeID }},
			{"Name", 45, "L", func(r Row) string { return r.Name }},
			{"Department", 35, "L", func(r Row) string { return r.Department }},
			{"Designation", 35, "L", func(r Row) string { return r.Designation }},
			{"Time In", 22, "C", func(r Row) string { return cell(r.TimeIn) }},
			{"Time Out", 22, "C", func(r Row) string { return cell(r.TimeOut) }},
			{"Total Hours", 25, "R", func(r Row) string { return hours(r.TotalHours) }},
			{"Status", 28, "L", func(r Row) string { return r.Status }},
		}
	}
	return []pdfColumn{
		{"Employee ID", 25, "L", func(r Row) string { return r.EmployeeID }},
		{"Name", 40, "L", func(r Row) string { return r.Name }},
		{"Days", 16, "C", func(r Row) string { return strconv.Itoa(r.DaysWorked) }},
		{"Department", 32, "L", func(r Row) string { return r.Department }},
		{"Designation", 32, "L", func(r Row) string { return r.Designation }},
		{"First In", 22, "C", func(r Row) string { return cell(r.TimeIn) }},
		{"Last Out", 22, "C", func(r Row) string { return cell(r.TimeOut) }},
		{"Total Hours", 25, "R", func(r Row) string { return hours(r.TotalHours) }},
		{"Avg/Day", 22, "R", func(r Row) string { return hours(r.AvgPerDay) }},
		{"Status", 28, "L", func(r Row) string { return r.Status }},
	}
}

// WorkHoursPDF lays out the multi-page work-hours report: company header,
// title with the covered period, generation timestamp, applied-filters block,
// summary-statistics table, striped main table and a per-page footer. The
// filename derives from the date range plus a _filtered suffix when any
// filter is active. An empty row set fails fast with ErrNoData.
func (g *Generator) WorkHoursPDF(in Input) ([]byte, string, error) {
	if len(in.Rows) == 0 {
		return nil, "", ErrNoData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Work Hours Report", false)
	pdf.AliasNbPages("")
	g.setFooter(pdf)
	pdf.SetAutoPageBreak(false, footerHeight)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	// Company header, right aligned.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(pageWidth-2*pageMargin, 10, g.company, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetX(pageMargin)
	pdf.CellFormat(pageWidth-2*pageMargin, 8, "Work Hours Report", "", 1, "R", false, 0, "")

	// Title and generation timestamp.
	title := fmt.Sprintf("Work Hours Report: %s", formatDate(in.StartDate))
	if in.IsRange {
		title = fmt.Sprintf("Work Hours Report: %s to %s", formatDate(in.StartDate), formatDate(in.EndDate))
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 7, "Generated on: "+g.now().Format("Jan 2, 2006 3:04 PM"), "", 1, "L", false, 0, "")

	// Applied filters.
	filters := activeFilters(in.Filters)
	if len(filters) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetX(pageMargin)
		pdf.CellFormat(0, 6, "Applied Filters:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, kv := range filters {
			pdf.SetX(pageMargin + 5)
			pdf.CellFormat(0, 6, fmt.Sprintf("- %s: %s", titleCase(kv[0]), kv[1]), "", 1, "L", false, 0, "")
		}
	}

	if in.Summary != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetX(pageMargin)
		pdf.CellFormat(0, 8, "Summary Statistics", "", 1, "L", false, 0, "")
		g.summaryTable(pdf, *in.Summary)
	}

	g.breakIfNeeded(pdf, 3*rowHeight)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 8, "Employee Work Hours", "", 1, "L", false, 0, "")

	columns := workHoursColumns(in.IsRange)
	if err := g.dataTable(pdf, columns, in.Rows); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render document: %w", err)
	}

	dateRange := in.StartDate
	if in.IsRange {
		dateRange = in.StartDate + "_to_" + in.EndDate
	}
	suffix := ""
	if len(filters) > 0 {
		suffix = "_filtered"
	}
	filename := fmt.Sprintf("work_hours_report_%s%s.pdf", dateRange, suffix)
	return buf.Bytes(), filename, nil
}

// EmployeeAttendancePDF lays out one employee's day-by-day attendance sheet
// for a period.
func (g *Generator) EmployeeAttendancePDF(employeeID, name string, days []Row, start, end string) ([]byte, string, error) {
	if len(days) == 0 {
		return nil, "", ErrNoData
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Attendance Report", false)
	pdf.AliasNbPages("")
	g.setFooter(pdf)
	pdf.SetAutoPageBreak(false, footerHeight)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(pageWidth-2*pageMargin, 10, g.company, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 9, fmt.Sprintf("Attendance: %s (%s)", name, employeeID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 7, fmt.Sprintf("Period: %s to %s", formatDate(start), formatDate(end)), "", 1, "L", false, 0, "")
	pdf.SetX(pageMargin)
	pdf.CellFormat(0, 7, "Generated on: "+g.now().Format("Jan 2, 2006 3:04 PM"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	cell := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}
	columns := []pdfColumn{
		{"Date", 35, "L", func(r Row) string { return formatDate(r.Date) }},
		{"Time In", 30, "C", func(r Row) string { return cell(r.TimeIn) }},
		{"Time Out", 30, "C", func(r Row) string { return cell(r.TimeOut) }},
		{"Total Hours", 30, "R", func(r Row) string { return strconv.FormatFloat(r.TotalHours, 'f', 2, 64) + "h" }},
		{"Status", 35, "L", func(r Row) string { return r.Status }},
	}
	if err := g.dataTable(pdf, columns, days); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to create attendance table: %w", err)
	}

	filename := fmt.Sprintf("%s_attendance_%s_to_%s.pdf", employeeID, start, end)
	return buf.Bytes(), filename, nil
}

func (g *Generator) setFooter(pdf *gofpdf.Fpdf) {
	attribution := fmt.Sprintf("(c) %d %s", g.now().Year(), g.company)
	pdf.SetFooterFunc(func() {
		pageWidth, pageHeight := pdf.GetPageSize()
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pageMargin, pageHeight-10)
		pdf.CellFormat(0, 5, attribution, "", 0, "L", false, 0, "")
		pdf.SetXY(pageMargin, pageHeight-10)
		pdf.CellFormat(pageWidth-2*pageMargin, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
}

func (g *Generator) summaryTable(pdf *gofpdf.Fpdf, stats SummaryStats) {
	rows := [][2]string{
		{"Total Employees", strconv.Itoa(stats.TotalEmployees)},
		{"Total Hours", strconv.FormatFloat(stats.TotalHours, 'f', 2, 64) + "h"},
		{"Currently Clocked In", strconv.Itoa(stats.CurrentlyClocked)},
		{"Average Hours/Employee", strconv.FormatFloat(stats.AvgHoursPerEmployee, 'f', 2, 64) + "h"},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(pageMargin)
	pdf.CellFormat(60, rowHeight, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, rowHeight, "Value", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetX(pageMargin)
		pdf.CellFormat(60, rowHeight-1, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, rowHeight-1, row[1], "1", 1, "R", false, 0, "")
	}
}

func (g *Generator) dataTable(pdf *gofpdf.Fpdf, columns []pdfColumn, rows []Row) error {
	g.breakIfNeeded(pdf, 2*rowHeight)
	g.tableHeader(pdf, columns)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
	for i, row := range rows {
		if g.breakIfNeeded(pdf, rowHeight) {
			g.tableHeader(pdf, columns)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
		}
		stripe := i%2 == 1
		pdf.SetX(pageMargin)
		for _, col := range columns {
			pdf.CellFormat(col.width, rowHeight-1, col.value(row), "1", 0, col.align, stripe, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to create main data table: %w", err)
	}
	return nil
}

func (g *Generator) tableHeader(pdf *gofpdf.Fpdf, columns []pdfColumn) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(pageMargin)
	for _, col := range columns {
		pdf.CellFormat(col.width, rowHeight, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// breakIfNeeded starts a new page when fewer than needed millimeters remain
// above the footer. Reports whether a page break happened.
func (g *Generator) breakIfNeeded(pdf *gofpdf.Fpdf, needed float64) bool {
	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+needed <= pageHeight-footerHeight {
		return false
	}
	pdf.AddPage()
	pdf.SetY(pageMargin)
	return true
}

func formatDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2, 2006")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
