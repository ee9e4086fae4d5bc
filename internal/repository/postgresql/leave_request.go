package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/database"
)

type leaveStoreImpl struct {
	db *database.DB
}

func NewLeaveStore(db *database.DB) analytics.LeaveStore {
	return &leaveStoreImpl{db: db}
}

// FindApprovedOverlapping returns approved leave requests whose inclusive
// [from_date, to_date] range overlaps [start, end]. Clipping to the window is
// left to the aggregator.
func (r *leaveStoreImpl) FindApprovedOverlapping(ctx context.Context, start, end time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, from_date, to_date, status
		FROM leave_requests
		WHERE status = 'Approved'
		AND from_date <= $2 AND to_date >= $1
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Request
	for rows.Next() {
		var lr leave.Request
		if err := rows.Scan(&lr.EmployeeID, &lr.FromDate, &lr.ToDate, &lr.Status); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}
