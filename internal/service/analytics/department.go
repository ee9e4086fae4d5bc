package analytics

import (
	"strings"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/user"
)

// DepartmentAttendance computes the attendance percentage per role across the
// active users holding that role. Roles with zero attendance records in the
// window are omitted so the consumer can tell "no data" apart from "0%".
func DepartmentAttendance(users []user.User, records []attendance.Record) []analytics.DepartmentStat {
	roleByEmployee := make(map[string]user.Role, len(users))
	for _, u := range users {
		if u.IsActive() {
			roleByEmployee[u.EmployeeID] = u.Role
		}
	}

	type tally struct {
		present int
		total   int
	}
	byRole := make(map[user.Role]*tally)
	for _, rec := range records {
		role, ok := roleByEmployee[rec.EmployeeID]
		if !ok {
			continue
		}
		t, ok := byRole[role]
		if !ok {
			t = &tally{}
			byRole[role] = t
		}
		t.total++
		if rec.Status == attendance.StatusPresent {
			t.present++
		}
	}

	stats := make([]analytics.DepartmentStat, 0, len(byRole))
	for _, role := range user.AllRoles {
		t, ok := byRole[role]
		if !ok || t.total == 0 {
			continue
		}
		stats = append(stats, analytics.DepartmentStat{
			Department: strings.ToUpper(string(role)),
			Attendance: Percent(t.present, t.total),
		})
	}
	return stats
}
