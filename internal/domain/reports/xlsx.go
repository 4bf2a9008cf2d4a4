package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Work Hours"

// WorkHoursXLSX writes the same filtered report data as a spreadsheet: title
// rows, applied filters, the summary block and the main table. Shares the
// ErrNoData and filename contracts with the PDF export.
func (g *Generator) WorkHoursXLSX(in Input) ([]byte, string, error) {
	if len(in.Rows) == 0 {
		return nil, "", ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"17503B"}},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to build spreadsheet: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, "", fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	row := 1
	setCell := func(col, r int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, r)
		_ = f.SetCellValue(sheetName, cell, value)
	}

	title := fmt.Sprintf("%s - Work Hours Report: %s", g.company, formatDate(in.StartDate))
	if in.IsRange {
		title = fmt.Sprintf("%s - Work Hours Report: %s to %s", g.company, formatDate(in.StartDate), formatDate(in.EndDate))
	}
	setCell(1, row, title)
	titleCell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellStyle(sheetName, titleCell, titleCell, titleStyle)
	row++
	setCell(1, row, "Generated on: "+g.now().Format("Jan 2, 2006 3:04 PM"))
	row += 2

	filters := activeFilters(in.Filters)
	if len(filters) > 0 {
		setCell(1, row, "Applied Filters")
		row++
		for _, kv := range filters {
			setCell(1, row, titleCase(kv[0]))
			setCell(2, row, kv[1])
			row++
		}
		row++
	}

	if in.Summary != nil {
		setCell(1, row, "Summary Statistics")
		row++
		summary := [][2]any{
			{"Total Employees", in.Summary.TotalEmployees},
			{"Total Hours", in.Summary.TotalHours},
			{"Currently Clocked In", in.Summary.CurrentlyClocked},
			{"Average Hours/Employee", in.Summary.AvgHoursPerEmployee},
		}
		for _, kv := range summary {
			setCell(1, row, kv[0])
			setCell(2, row, kv[1])
			row++
		}
		row++
	}

	headers := []string{"Employee ID", "Name", "Department", "Designation", "Time In", "Time Out", "Total Hours", "Status"}
	if in.IsRange {
		headers = []string{"Employee ID", "Name", "Days", "Department", "Designation", "First In", "Last Out", "Total Hours", "Avg/Day", "Status"}
	}
	for col, header := range headers {
		setCell(col+1, row, header)
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	_ = f.SetCellStyle(sheetName, first, last, headerStyle)
	row++

	for _, r := range in.Rows {
		values := []any{r.EmployeeID, r.Name, r.Department, r.Designation, orDash(r.TimeIn), orDash(r.TimeOut), r.TotalHours, r.Status}
		if in.IsRange {
			values = []any{r.EmployeeID, r.Name, r.DaysWorked, r.Department, r.Designation, orDash(r.TimeIn), orDash(r.TimeOut), r.TotalHours, r.AvgPerDay, r.Status}
		}
		for col, value := range values {
			setCell(col+1, row, value)
		}
		row++
	}

	_ = f.SetColWidth(sheetName, "A", "B", 22)
	_ = f.SetColWidth(sheetName, "C", string(rune('A'+len(headers)-1)), 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	dateRange := in.StartDate
	if in.IsRange {
		dateRange = in.StartDate + "_to_" + in.EndDate
	}
	suffix := ""
	if len(filters) > 0 {
		suffix = "_filtered"
	}
	filename := fmt.Sprintf("work_hours_report_%s%s.xlsx", dateRange, suffix)
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
