package leave

import "time"

const StatusApproved = "Approved"

// Request is a leave request over an inclusive date range. Only approved
// requests count toward leave-utilization metrics.
type Request struct {
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Status     string
}
