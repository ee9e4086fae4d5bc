package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type AnalyticsServiceImpl struct {
	users      analytics.UserDirectory
	attendance analytics.AttendanceStore
	leaves     analytics.LeaveStore
	snapshots  analytics.SnapshotRunner
	now        func() time.Time
}

func NewAnalyticsService(users analytics.UserDirectory, attendanceStore analytics.AttendanceStore, leaves analytics.LeaveStore, snapshots analytics.SnapshotRunner) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		users:      users,
		attendance: attendanceStore,
		leaves:     leaves,
		snapshots:  snapshots,
		now:        time.Now,
	}
}

// identity extracts the requester's employee id and role from JWT claims
func (s *AnalyticsServiceImpl) identity(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", analytics.ErrIdentityMissing
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", "", analytics.ErrIdentityMissing
	}
	return employeeID, user.Role(role), nil
}

// fetchWindow loads users, attendance rows and overlapping approved leaves for
// a window inside one read snapshot, so the three reads cannot observe a
// half-written day. A transaction is not safe for concurrent use, so the
// fetches run sequentially. Any failing fetch fails the whole aggregation;
// partial metrics would be misleading.
func (s *AnalyticsServiceImpl) fetchWindow(ctx context.Context, w Window) ([]user.User, []attendance.Record, []leave.Request, error) {
	var (
		activeUsers []user.User
		records     []attendance.Record
		leaves      []leave.Request
	)

	err := s.snapshots.ReadSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if activeUsers, err = s.users.ListActive(txCtx, nil, ""); err != nil {
			return err
		}
		if records, err = s.attendance.FindInRange(txCtx, w.Start, w.End); err != nil {
			return err
		}
		leaves, err = s.leaves.FindApprovedOverlapping(txCtx, w.Start, w.End)
		return err
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return activeUsers, records, leaves, nil
}

// GetSummary computes the full metrics object for a reporting period. The
// period value is permissive: anything unrecognized means today.
func (s *AnalyticsServiceImpl) GetSummary(ctx context.Context, period string) (*analytics.Summary, error) {
	employeeID, role, err := s.identity(ctx)
	if err != nil {
		return nil, err
	}

	p := analytics.ParsePeriod(period)
	w := ResolveWindow(p, s.now())

	activeUsers, records, leaves, err := s.fetchWindow(ctx, w)
	if err != nil {
		return nil, err
	}

	totalEmployees := ResolveHeadcount(activeUsers, user.AccessibleRoles(role), employeeID)
	totals := ReduceAttendance(records)
	avgAttendance := Percent(totals.Present, totals.Total)
	absenteeism := Percent(totals.Absent, totals.Total)
	avgIn, avgOut := AggregateDailyTimes(records)
	totalLeaveDays, utilization, _ := LeaveUtilization(leaves, w, p, totalEmployees)

	// lateCount is a fixed 15% share of present, a placeholder until real
	// late detection lands. latePercent is the remainder so the three
	// percentages never exceed 100.
	lateCount := int(float64(totals.Present) * 0.15)
	latePercent := 100 - avgAttendance - absenteeism
	if latePercent < 0 {
		latePercent = 0
	}

	// Check-in stays null when no data, check-out renders "--". The
	// asymmetry matches what the dashboard expects from each field.
	checkout := "--"
	if avgOut != nil {
		checkout = *avgOut
	}

	return &analytics.Summary{
		WorkingDays:      w.WorkingDays,
		TotalEmployees:   totalEmployees,
		AvgAttendance:    avgAttendance,
		AbsenteeismRate:  absenteeism,
		AvgCheckinTime:   avgIn,
		AvgCheckoutTime:  checkout,
		AvgWorkingHours:  AvgWorkHours(records),
		LeaveUtilization: utilization,
		TotalLeaveDays:   totalLeaveDays,
		PresentCount:     totals.Present,
		AbsentCount:      totals.Absent,
		LateCount:        lateCount,
		PresentPercent:   avgAttendance,
		AbsentPercent:    absenteeism,
		LatePercent:      latePercent,
		TrendData:        GenerateTrend(p, w, records),
		DepartmentData:   DepartmentAttendance(activeUsers, records),
		YearlyPieData: []analytics.PieSlice{
			{Name: "Present", Value: totals.Present},
			{Name: "Absent", Value: totals.Absent},
		},
	}, nil
}

// GetTrend returns only the trend series for a period
func (s *AnalyticsServiceImpl) GetTrend(ctx context.Context, period string) ([]analytics.TrendPoint, error) {
	if _, _, err := s.identity(ctx); err != nil {
		return nil, err
	}

	p := analytics.ParsePeriod(period)
	w := ResolveWindow(p, s.now())

	records, err := s.attendance.FindInRange(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	return GenerateTrend(p, w, records), nil
}

// GetDepartmentStats returns only the per-role breakdown for a period
func (s *AnalyticsServiceImpl) GetDepartmentStats(ctx context.Context, period string) ([]analytics.DepartmentStat, error) {
	if _, _, err := s.identity(ctx); err != nil {
		return nil, err
	}

	p := analytics.ParsePeriod(period)
	w := ResolveWindow(p, s.now())

	var (
		activeUsers []user.User
		records     []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activeUsers, err = s.users.ListActive(gCtx, nil, "")
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendance.FindInRange(gCtx, w.Start, w.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return DepartmentAttendance(activeUsers, records), nil
}
