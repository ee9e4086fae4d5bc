package analytics

import (
	"context"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/user"
)

// AttendanceStore provides raw attendance rows for a date range, both bounds
// inclusive at day granularity.
type AttendanceStore interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error)
}

// LeaveStore provides approved leave requests whose [from, to] range overlaps
// the given window.
type LeaveStore interface {
	FindApprovedOverlapping(ctx context.Context, start, end time.Time) ([]leave.Request, error)
}

// UserDirectory lists active users. A nil roles slice means no role filter;
// an empty excludeEmployeeID means no exclusion.
type UserDirectory interface {
	ListActive(ctx context.Context, roles []user.Role, excludeEmployeeID string) ([]user.User, error)
}

// SnapshotRunner executes fn so that every store call fn makes through the
// returned context reads one consistent snapshot of the data.
type SnapshotRunner interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}
