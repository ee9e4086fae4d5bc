package analytics

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }

func clock(day time.Time, hour, minute int) *time.Time {
	return timePtr(time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()))
}

func TestReduceAttendance(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day, Status: attendance.StatusPresent},
		{EmployeeID: "e2", Date: day, Status: attendance.StatusPresent},
		{EmployeeID: "e3", Date: day, Status: attendance.StatusAbsent},
		{EmployeeID: "e4", Date: day, Status: "Leave"},
	}

	totals := ReduceAttendance(records)

	assert.Equal(t, 2, totals.Present)
	assert.Equal(t, 1, totals.Absent)
	assert.Equal(t, 4, totals.Total, "every record counts toward total regardless of status")
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{0, 5, 0},
		{5, 5, 100},
		{1, 0, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Percent(c.part, c.total); got != c.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", c.part, c.total, got, c.want)
		}
	}
}

func TestAggregateDailyTimes_CollapsesSameDayRecords(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	// Two clock cycles on the same day: effective times must be the earliest
	// check-in and latest check-out.
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day, ClockIn: clock(day, 9, 15), ClockOut: clock(day, 13, 0)},
		{EmployeeID: "e1", Date: day, ClockIn: clock(day, 11, 0), ClockOut: clock(day, 18, 30)},
	}

	avgIn, avgOut := AggregateDailyTimes(records)

	require.NotNil(t, avgIn)
	require.NotNil(t, avgOut)
	assert.Equal(t, "09:15", *avgIn)
	assert.Equal(t, "18:30", *avgOut)
}

func TestAggregateDailyTimes_AveragesAcrossDays(t *testing.T) {
	day1 := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day1, ClockIn: clock(day1, 9, 0), ClockOut: clock(day1, 17, 0)},
		{EmployeeID: "e1", Date: day2, ClockIn: clock(day2, 10, 0), ClockOut: clock(day2, 18, 0)},
	}

	avgIn, avgOut := AggregateDailyTimes(records)

	require.NotNil(t, avgIn)
	require.NotNil(t, avgOut)
	assert.Equal(t, "09:30", *avgIn)
	assert.Equal(t, "17:30", *avgOut)
}

func TestAggregateDailyTimes_MissingSides(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	// Checked in, never checked out.
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day, ClockIn: clock(day, 8, 45)},
	}

	avgIn, avgOut := AggregateDailyTimes(records)

	require.NotNil(t, avgIn)
	assert.Equal(t, "08:45", *avgIn)
	assert.Nil(t, avgOut)
}

func TestAggregateDailyTimes_Empty(t *testing.T) {
	avgIn, avgOut := AggregateDailyTimes(nil)
	assert.Nil(t, avgIn)
	assert.Nil(t, avgOut)
}

func TestAvgWorkHours(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day, WorkHours: floatPtr(7.25)},
		{EmployeeID: "e2", Date: day, WorkHours: floatPtr(8.5)},
		{EmployeeID: "e3", Date: day, WorkHours: floatPtr(0)}, // excluded
		{EmployeeID: "e4", Date: day},                         // excluded
	}

	// (7.25 + 8.5) / 2 = 7.875, one decimal
	assert.Equal(t, 7.9, AvgWorkHours(records))
	assert.Equal(t, 0.0, AvgWorkHours(nil))
}
