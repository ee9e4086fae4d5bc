package analytics

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentAttendance(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	users := []user.User{
		{EmployeeID: "e1", Role: user.RoleEmployee, Status: user.StatusActive},
		{EmployeeID: "e2", Role: user.RoleEmployee, Status: user.StatusActive},
		{EmployeeID: "h1", Role: user.RoleHR, Status: user.StatusActive},
		{EmployeeID: "a1", Role: user.RoleAdmin, Status: user.StatusActive}, // no records
	}
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day, Status: attendance.StatusPresent},
		{EmployeeID: "e2", Date: day, Status: attendance.StatusAbsent},
		{EmployeeID: "h1", Date: day, Status: attendance.StatusPresent},
	}

	stats := DepartmentAttendance(users, records)

	require.Len(t, stats, 2, "roles with zero records are omitted")
	assert.Equal(t, "HR", stats[0].Department)
	assert.Equal(t, 100, stats[0].Attendance)
	assert.Equal(t, "EMPLOYEE", stats[1].Department)
	assert.Equal(t, 50, stats[1].Attendance)
}

func TestDepartmentAttendance_IgnoresInactiveUsers(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	users := []user.User{
		{EmployeeID: "e1", Role: user.RoleEmployee, Status: user.StatusInactive},
	}
	records := []attendance.Record{
		{EmployeeID: "e1", Date: day, Status: attendance.StatusPresent},
	}

	stats := DepartmentAttendance(users, records)

	assert.Empty(t, stats)
}

func TestDepartmentAttendance_NoData(t *testing.T) {
	assert.Empty(t, DepartmentAttendance(nil, nil))
}
