package attendance

import (
	"time"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Record is a single attendance row. An employee may have several records for
// the same date (multiple clock-in/out cycles); aggregation collapses them to
// the earliest clock-in and latest clock-out of that day.
type Record struct {
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     string
	WorkHours  *float64
}
