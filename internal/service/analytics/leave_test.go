package analytics

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveUtilization_ClipsToWindow(t *testing.T) {
	// Leave spans Jan 28 - Feb 5; the February window must count only
	// Feb 1-5, five days.
	w := ResolveWindow(analytics.PeriodMonth, date(2024, time.February, 15))
	leaves := []leave.Request{
		{EmployeeID: "e1", FromDate: date(2024, time.January, 28), ToDate: date(2024, time.February, 5), Status: leave.StatusApproved},
	}

	totalDays, utilization, _ := LeaveUtilization(leaves, w, analytics.PeriodMonth, 10)

	assert.Equal(t, 5, totalDays)
	assert.Equal(t, 5, utilization, "month view reports the aggregate day count")
}

func TestLeaveUtilization_NoOverlap(t *testing.T) {
	w := ResolveWindow(analytics.PeriodMonth, date(2024, time.February, 15))
	leaves := []leave.Request{
		{EmployeeID: "e1", FromDate: date(2024, time.March, 3), ToDate: date(2024, time.March, 7), Status: leave.StatusApproved},
	}

	totalDays, utilization, onLeave := LeaveUtilization(leaves, w, analytics.PeriodMonth, 10)

	assert.Equal(t, 0, totalDays)
	assert.Equal(t, 0, utilization)
	assert.Equal(t, 0, onLeave)
}

func TestLeaveUtilization_TodayCountsDistinctEmployees(t *testing.T) {
	today := date(2024, time.February, 5)
	w := ResolveWindow(analytics.PeriodToday, today)
	// e1 has two overlapping approved requests; it must count once.
	leaves := []leave.Request{
		{EmployeeID: "e1", FromDate: date(2024, time.February, 1), ToDate: date(2024, time.February, 9), Status: leave.StatusApproved},
		{EmployeeID: "e1", FromDate: date(2024, time.February, 5), ToDate: date(2024, time.February, 5), Status: leave.StatusApproved},
		{EmployeeID: "e2", FromDate: date(2024, time.February, 5), ToDate: date(2024, time.February, 6), Status: leave.StatusApproved},
	}

	_, utilization, onLeave := LeaveUtilization(leaves, w, analytics.PeriodToday, 10)

	assert.Equal(t, 2, onLeave)
	assert.Equal(t, 2, utilization, "today view reports employees on leave")
}

func TestLeaveUtilization_IgnoresUnapproved(t *testing.T) {
	w := ResolveWindow(analytics.PeriodMonth, date(2024, time.February, 15))
	leaves := []leave.Request{
		{EmployeeID: "e1", FromDate: date(2024, time.February, 5), ToDate: date(2024, time.February, 7), Status: "Pending"},
	}

	totalDays, _, _ := LeaveUtilization(leaves, w, analytics.PeriodMonth, 10)

	assert.Equal(t, 0, totalDays)
}

func TestLeaveUtilization_FallbackPeriod(t *testing.T) {
	// No caller passes a period outside today/month/year yet; the fallback
	// reports days per employee.
	w := ResolveWindow(analytics.PeriodMonth, date(2024, time.February, 15))
	leaves := []leave.Request{
		{EmployeeID: "e1", FromDate: date(2024, time.February, 1), ToDate: date(2024, time.February, 10), Status: leave.StatusApproved},
	}

	_, utilization, _ := LeaveUtilization(leaves, w, analytics.Period("quarter"), 4)

	// 10 days / 4 employees = 2.5, rounded to 3
	assert.Equal(t, 3, utilization)

	_, utilization, _ = LeaveUtilization(leaves, w, analytics.Period("quarter"), 0)
	assert.Equal(t, 10, utilization, "denominator floors at one")
}
