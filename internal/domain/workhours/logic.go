package workhours

import (
	"errors"
	"fmt"
	"time"
)

// Status labels shown for a per-day attendance row.
const (
	StatusClockedIn  = "Clocked In"
	StatusClockedOut = "Clocked Out"
	StatusNoCheckIn  = "No Check-in"
)

// maxRangeDays caps a report range; longer spans are rejected before any
// upstream fetch.
const maxRangeDays = 31

const dateLayout = "2006-01-02"

// IsClockedIn reports whether the row represents an open attendance session.
// The backend flag wins when set; otherwise a check-in with no check-out (or a
// check-out equal to the check-in) means the employee is still on the clock.
func IsClockedIn(w WorkHour) bool {
	if w.ClockedIn {
		return true
	}
	return w.TimeIn != "" && (w.TimeOut == "" || w.TimeOut == w.TimeIn)
}

// StatusLabel maps a row to its display status.
func StatusLabel(w WorkHour) string {
	switch {
	case IsClockedIn(w):
		return StatusClockedIn
	case w.TimeOut != "":
		return StatusClockedOut
	default:
		return StatusNoCheckIn
	}
}

// ValidateRange checks a start/end date pair: both must parse as YYYY-MM-DD,
// start must not follow end, and the span must not exceed 31 days.
func ValidateRange(start, end string) error {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return fmt.Errorf("invalid start date %q", start)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return fmt.Errorf("invalid end date %q", end)
	}
	if from.After(to) {
		return errors.New("start date cannot be after end date")
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("date range cannot exceed %d days", maxRangeDays)
	}
	return nil
}
