package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/analytics-backend-go/internal/pkg/database"
)

type userDirectoryImpl struct {
	db *database.DB
}

func NewUserDirectory(db *database.DB) analytics.UserDirectory {
	return &userDirectoryImpl{db: db}
}

// ListActive returns active users, optionally filtered to a role set and
// excluding one employee id.
func (r *userDirectoryImpl) ListActive(ctx context.Context, roles []user.Role, excludeEmployeeID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT employee_id, role, status FROM users WHERE status = 'Active'`
	args := []interface{}{}

	if len(roles) > 0 {
		roleValues := make([]string, len(roles))
		for i, role := range roles {
			roleValues[i] = string(role)
		}
		args = append(args, roleValues)
		query += fmt.Sprintf(" AND role = ANY($%d)", len(args))
	}
	if excludeEmployeeID != "" {
		args = append(args, excludeEmployeeID)
		query += fmt.Sprintf(" AND employee_id <> $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query active users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.EmployeeID, &u.Role, &u.Status); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
