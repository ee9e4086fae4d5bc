package analytics

import (
	"math"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/leave"
)

// LeaveUtilization reduces approved leave requests against a reporting window.
//
// Each leave's contribution is clipped to the overlap between its inclusive
// [from, to] range and the window before counting days. The reported
// utilization value depends on the period: for today it is the number of
// distinct employees on leave, for month and year it is the total clipped day
// count (an aggregate, deliberately not normalized per employee). Any other
// period value falls back to days-per-employee; no current caller passes one,
// but the branch documents the intended behavior for future period kinds.
func LeaveUtilization(leaves []leave.Request, w Window, p analytics.Period, totalEmployees int) (totalDays, utilization, onLeaveToday int) {
	seen := make(map[string]struct{})
	for _, lr := range leaves {
		if lr.Status != leave.StatusApproved {
			continue
		}
		days := clipDays(lr, w)
		if days == 0 {
			continue
		}
		totalDays += days
		seen[lr.EmployeeID] = struct{}{}
	}
	onLeaveToday = len(seen)

	switch p {
	case analytics.PeriodToday:
		utilization = onLeaveToday
	case analytics.PeriodMonth, analytics.PeriodYear:
		utilization = totalDays
	default:
		denom := totalEmployees
		if denom < 1 {
			denom = 1
		}
		utilization = int(math.Round(float64(totalDays) / float64(denom)))
	}
	return totalDays, utilization, onLeaveToday
}

// clipDays counts the days a leave contributes inside the window, floored at
// zero when the ranges do not overlap.
func clipDays(lr leave.Request, w Window) int {
	start := lr.FromDate
	if w.Start.After(start) {
		start = w.Start
	}
	end := lr.ToDate
	if w.End.Before(end) {
		end = w.End
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
