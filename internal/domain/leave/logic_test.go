package leave

import "testing"

func TestRemainingDays(t *testing.T) {
	tests := []struct {
		allocated float64
		used      float64
		want      float64
	}{
		{21, 5, 16},
		{21, 21, 0},
		{21, 25, 0},
		{0, 0, 0},
		{14.5, 2.5, 12},
	}
	for _, tc := range tests {
		if got := RemainingDays(tc.allocated, tc.used); got != tc.want {
			t.Fatalf("RemainingDays(%v, %v) = %v, want %v", tc.allocated, tc.used, got, tc.want)
		}
	}
}

func TestRemainingTier(t *testing.T) {
	tests := []struct {
		name      string
		allocated float64
		used      float64
		want      string
	}{
		{"untouched allocation", 21, 0, TierHigh},
		{"exactly 70 percent", 10, 3, TierHigh},
		{"between thresholds", 10, 5, TierMedium},
		{"exactly 40 percent", 10, 6, TierMedium},
		{"nearly exhausted", 10, 9, TierLow},
		{"over-used", 10, 15, TierLow},
		{"zero allocation", 0, 0, TierLow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemainingTier(tc.allocated, tc.used); got != tc.want {
				t.Fatalf("RemainingTier(%v, %v) = %q, want %q", tc.allocated, tc.used, got, tc.want)
			}
		})
	}
}

func TestUtilizationTierIsInverse(t *testing.T) {
	if got := UtilizationTier(10, 9); got != TierHigh {
		t.Fatalf("heavy use should be high utilization, got %q", got)
	}
	if got := UtilizationTier(10, 1); got != TierLow {
		t.Fatalf("light use should be low utilization, got %q", got)
	}
	if got := UtilizationTier(10, 5); got != TierMedium {
		t.Fatalf("middling use should be medium, got %q", got)
	}
}

func TestMarkOnLeave(t *testing.T) {
	balances := []Balance{
		{EmployeeID: "EMP-001", EmployeeName: "Alice Wanjiru", Allocated: 21, Used: 5},
		{EmployeeID: "", EmployeeName: "Brian Otieno", Allocated: 21, Used: 25},
		{EmployeeID: "EMP-003", EmployeeName: "Carol Achieng", Allocated: 14, Used: 0},
	}
	onLeave := []OnLeaveEntry{
		{EmployeeID: "EMP-001", EmployeeName: "Alice Wanjiru"},
		{EmployeeID: "", EmployeeName: "Brian Otieno"},
	}

	got := MarkOnLeave(balances, onLeave)

	if !got[0].OnLeave {
		t.Fatalf("id match should mark on leave: %+v", got[0])
	}
	if !got[1].OnLeave {
		t.Fatalf("name fallback should mark on leave when id is empty: %+v", got[1])
	}
	if got[2].OnLeave {
		t.Fatalf("unlisted employee marked on leave: %+v", got[2])
	}

	if got[0].Remaining != 16 {
		t.Fatalf("remaining = %v, want 16", got[0].Remaining)
	}
	if got[1].Remaining != 0 {
		t.Fatalf("over-used balance should clamp to 0, got %v", got[1].Remaining)
	}

	if balances[0].OnLeave || balances[0].Remaining != 0 {
		t.Fatalf("input slice mutated: %+v", balances[0])
	}
}

func TestMarkOnLeaveNameDoesNotMatchWhenIDPresent(t *testing.T) {
	balances := []Balance{{EmployeeID: "EMP-009", EmployeeName: "Alice Wanjiru", Allocated: 10}}
	onLeave := []OnLeaveEntry{{EmployeeID: "EMP-001", EmployeeName: "Alice Wanjiru"}}

	got := MarkOnLeave(balances, onLeave)
	if got[0].OnLeave {
		t.Fatalf("rows with an id must join by id only: %+v", got[0])
	}
}
