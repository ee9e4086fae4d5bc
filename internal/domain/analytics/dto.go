package analytics

// Period is the reporting window granularity.
type Period string

const (
	PeriodToday Period = "today"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod resolves a raw query value to a Period. Unrecognized values fall
// back to today rather than erroring, matching the lenient endpoint contract.
func ParsePeriod(s string) Period {
	switch s {
	case string(PeriodMonth):
		return PeriodMonth
	case string(PeriodYear):
		return PeriodYear
	default:
		return PeriodToday
	}
}

// Summary is the combined response for the attendance analytics endpoint.
type Summary struct {
	WorkingDays     int     `json:"workingDays"`
	TotalEmployees  int     `json:"totalEmployees"`
	AvgAttendance   int     `json:"avgAttendance"`   // percent, integer
	AbsenteeismRate int     `json:"absenteeismRate"` // percent, integer
	AvgCheckinTime  *string `json:"avgCheckinTime"`  // "HH:MM", null when no check-ins
	AvgCheckoutTime string  `json:"avgCheckoutTime"` // "HH:MM", "--" when no check-outs
	AvgWorkingHours float64 `json:"avgWorkingHours"` // one decimal

	// LeaveUtilization is employees-on-leave for today, total leave days for
	// month/year. TotalLeaveDays is always the window's clipped day sum.
	LeaveUtilization int `json:"leaveUtilization"`
	TotalLeaveDays   int `json:"totalLeaveDays"`

	PresentCount int `json:"presentCount"`
	AbsentCount  int `json:"absentCount"`
	// LateCount is a derived estimate (15% of present), not a measured
	// quantity. Kept for output compatibility with the dashboard UI.
	LateCount      int `json:"lateCount"`
	PresentPercent int `json:"presentPercent"`
	AbsentPercent  int `json:"absentPercent"`
	LatePercent    int `json:"latePercent"`

	TrendData      []TrendPoint     `json:"trendData"`
	DepartmentData []DepartmentStat `json:"departmentData"`
	YearlyPieData  []PieSlice       `json:"yearlyPieData"`
}

// TrendPoint is one bucket of the trend series. Attendance is a percentage for
// month/year buckets and a raw check-in count for today's hourly buckets.
type TrendPoint struct {
	Period     string `json:"period"`
	Attendance int    `json:"attendance"`
}

// DepartmentStat is the attendance percentage for one role. Roles with no
// attendance records in the window are omitted entirely, so "no data" is
// distinguishable from "0% attendance".
type DepartmentStat struct {
	Department string `json:"department"`
	Attendance int    `json:"attendance"`
}

// PieSlice feeds the present/absent distribution chart.
type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
