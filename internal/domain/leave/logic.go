package leave

// Tier labels for the remaining/utilization categorization. These are pure
// functions of (used, allocated) and drive the badge colors in the views.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// RemainingDays returns allocated minus used, floored at zero. Over-used
// allocations show an exhausted balance, never a negative one.
func RemainingDays(allocated, used float64) float64 {
	remaining := allocated - used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingTier buckets a balance by the share of allocation still available:
// at least 70% remaining is high, at least 40% medium, anything below low.
// A zero allocation is always low.
func RemainingTier(allocated, used float64) string {
	if allocated <= 0 {
		return TierLow
	}
	pct := RemainingDays(allocated, used) / allocated * 100
	switch {
	case pct >= 70:
		return TierHigh
	case pct >= 40:
		return TierMedium
	default:
		return TierLow
	}
}

// UtilizationTier is the inverse view: how much of the allocation is used.
func UtilizationTier(allocated, used float64) string {
	switch RemainingTier(allocated, used) {
	case TierHigh:
		return TierLow
	case TierLow:
		return TierHigh
	default:
		return TierMedium
	}
}

// MarkOnLeave joins the on-leave list onto the balances. Membership keys on
// the employee id when the upstream provides one; rows without an id fall
// back to the display name, the only correlation the dashboard offers then.
// Remaining is recomputed (clamped) on the way through. The input slice is
// not mutated.
func MarkOnLeave(balances []Balance, onLeave []OnLeaveEntry) []Balance {
	byID := make(map[string]struct{}, len(onLeave))
	byName := make(map[string]struct{}, len(onLeave))
	for _, entry := range onLeave {
		if entry.EmployeeID != "" {
			byID[entry.EmployeeID] = struct{}{}
		}
		if entry.EmployeeName != "" {
			byName[entry.EmployeeName] = struct{}{}
		}
	}

	out := make([]Balance, len(balances))
	for i, b := range balances {
		b.Remaining = RemainingDays(b.Allocated, b.Used)
		if b.EmployeeID != "" {
			_, b.OnLeave = byID[b.EmployeeID]
		} else {
			_, b.OnLeave = byName[b.EmployeeName]
		}
		out[i] = b
	}
	return out
}
