package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/database"
)

type attendanceStoreImpl struct {
	db *database.DB
}

func NewAttendanceStore(db *database.DB) analytics.AttendanceStore {
	return &attendanceStoreImpl{db: db}
}

// FindInRange returns every attendance row with a date inside [start, end].
// Rows are returned as-is; collapsing multiple rows per employee-day is the
// aggregator's job.
func (r *attendanceStoreImpl) FindInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date, clock_in, clock_out, status, work_hours
		FROM attendances
		WHERE date >= $1 AND date <= $2
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance in range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.EmployeeID, &rec.Date, &rec.ClockIn, &rec.ClockOut, &rec.Status, &rec.WorkHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
