package workhours

import (
	"strings"
	"testing"
)

func TestIsClockedIn(t *testing.T) {
	tests := []struct {
		name string
		row  WorkHour
		want bool
	}{
		{"backend flag wins", WorkHour{ClockedIn: true}, true},
		{"open session", WorkHour{TimeIn: "08:30", TimeOut: ""}, true},
		{"checkout equals checkin", WorkHour{TimeIn: "08:30", TimeOut: "08:30"}, true},
		{"closed session", WorkHour{TimeIn: "08:30", TimeOut: "17:00"}, false},
		{"no check-in", WorkHour{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsClockedIn(tc.row); got != tc.want {
				t.Fatalf("IsClockedIn(%+v) = %v, want %v", tc.row, got, tc.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		row  WorkHour
		want string
	}{
		{WorkHour{TimeIn: "08:30"}, StatusClockedIn},
		{WorkHour{TimeIn: "08:30", TimeOut: "17:00"}, StatusClockedOut},
		{WorkHour{}, StatusNoCheckIn},
	}
	for _, tc := range tests {
		if got := StatusLabel(tc.row); got != tc.want {
			t.Fatalf("StatusLabel(%+v) = %q, want %q", tc.row, got, tc.want)
		}
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr string
	}{
		{"valid single day", "2026-08-01", "2026-08-01", ""},
		{"valid span", "2026-08-01", "2026-08-28", ""},
		{"full 31 days", "2026-08-01", "2026-09-01", ""},
		{"inverted", "2026-08-10", "2026-08-01", "start date cannot be after end date"},
		{"too long", "2026-08-01", "2026-09-02", "cannot exceed 31 days"},
		{"bad start", "01/08/2026", "2026-08-02", "invalid start date"},
		{"bad end", "2026-08-01", "not-a-date", "invalid end date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRange(tc.start, tc.end)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}
