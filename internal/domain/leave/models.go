package leave

import "strconv"

// Balance is one employee/leave-type allocation row from the leave dashboard.
// The upstream joins the on-leave state in from a separate list; OnLeave is
// filled by MarkOnLeave, not by the payload itself.
type Balance struct {
	EmployeeID   string  `json:"employee"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	LeaveType    string  `json:"leave_type"`
	Allocated    float64 `json:"total_allocated"`
	Used         float64 `json:"used"`
	Remaining    float64 `json:"remaining"`
	OnLeave      bool    `json:"on_leave"`
}

// OnLeaveEntry is one row of the dashboard's "who is on leave today" list.
type OnLeaveEntry struct {
	EmployeeID   string `json:"employee"`
	EmployeeName string `json:"employee_name"`
}

// Dashboard is the combined leave-dashboard payload.
type Dashboard struct {
	Balances []Balance      `json:"leave_balances"`
	OnLeave  []OnLeaveEntry `json:"on_leave"`
}

// Field implements grid.Record for the leave-balance views.
func (b Balance) Field(name string) (string, bool) {
	switch name {
	case "employee":
		return b.EmployeeID, true
	case "employee_name":
		return b.EmployeeName, true
	case "department":
		return b.Department, true
	case "leave_type":
		return b.LeaveType, true
	case "total_allocated":
		return strconv.FormatFloat(b.Allocated, 'f', -1, 64), true
	case "used":
		return strconv.FormatFloat(b.Used, 'f', -1, 64), true
	case "remaining":
		return strconv.FormatFloat(b.Remaining, 'f', -1, 64), true
	case "on_leave":
		if b.OnLeave {
			return "On Leave", true
		}
		return "Available", true
	default:
		return "", false
	}
}

// SearchFields are the free-text search targets for the leave views.
var SearchFields = []string{"employee_name", "department", "leave_type"}

// BucketFields are the categorical fields the leave views filter on.
var BucketFields = []string{"department"}
