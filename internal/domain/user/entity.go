package user

type Role string

const (
	RoleSuperadmin Role = "superadmin" // Full visibility across the organization
	RoleAdmin      Role = "admin"      // Manages HR staff and employees
	RoleHR         Role = "hr"         // Manages employees
	RoleEmployee   Role = "employee"   // Regular employee
)

// AllRoles lists roles in a stable order for deterministic output.
var AllRoles = []Role{RoleSuperadmin, RoleAdmin, RoleHR, RoleEmployee}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type User struct {
	EmployeeID string
	Role       Role
	Status     string
}

// IsActive checks if the user counts toward headcount
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
