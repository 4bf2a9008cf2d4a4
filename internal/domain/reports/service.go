package reports

import (
	"fmt"
	"sync/atomic"
)

// Export formats.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// Service gates document generation behind a busy flag: at most one export
// runs at a time, and a second request fails with ErrExportBusy instead of
// queueing.
type Service struct {
	gen  *Generator
	busy atomic.Bool
}

func NewService(gen *Generator) *Service {
	return &Service{gen: gen}
}

// WorkHoursExport generates the work-hours report in the requested format.
func (s *Service) WorkHoursExport(format string, in Input) ([]byte, string, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, "", ErrExportBusy
	}
	defer s.busy.Store(false)

	switch format {
	case FormatPDF:
		return s.gen.WorkHoursPDF(in)
	case FormatXLSX:
		return s.gen.WorkHoursXLSX(in)
	default:
		return nil, "", fmt.Errorf("unsupported export format %q", format)
	}
}

// EmployeeAttendanceExport generates one employee's attendance sheet.
func (s *Service) EmployeeAttendanceExport(employeeID, name string, days []Row, start, end string) ([]byte, string, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, "", ErrExportBusy
	}
	defer s.busy.Store(false)

	return s.gen.EmployeeAttendancePDF(employeeID, name, days, start, end)
}
