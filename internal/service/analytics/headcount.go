package analytics

import (
	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/user"
)

// ResolveHeadcount counts active users whose role is visible to the requester,
// excluding the requester itself.
//
// When the role filter yields zero, the count falls back to all active users
// except the requester. A viewer with a narrow accessible-role set would
// otherwise see "0 employees" on the dashboard; the fallback is a deliberate
// product choice, not an accident.
func ResolveHeadcount(users []user.User, accessible []user.Role, requesterID string) int {
	visible := make(map[user.Role]struct{}, len(accessible))
	for _, r := range accessible {
		visible[r] = struct{}{}
	}

	count := 0
	for _, u := range users {
		if !u.IsActive() || u.EmployeeID == requesterID {
			continue
		}
		if _, ok := visible[u.Role]; ok {
			count++
		}
	}
	if count > 0 {
		return count
	}

	// The fallback drops only the role filter. Inactive users stay excluded;
	// they never count toward headcount under any view.
	for _, u := range users {
		if u.IsActive() && u.EmployeeID != requesterID {
			count++
		}
	}
	return count
}
