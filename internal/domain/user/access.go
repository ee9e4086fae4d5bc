package user

// AccessibleRoles maps a viewer role to the roles whose records it may see.
// The mapping is an organizational policy input, consumed by the analytics
// headcount resolver; it is not derived from permissions.
func AccessibleRoles(role Role) []Role {
	switch role {
	case RoleSuperadmin:
		return []Role{RoleSuperadmin, RoleAdmin, RoleHR, RoleEmployee}
	case RoleAdmin:
		return []Role{RoleAdmin, RoleHR, RoleEmployee}
	case RoleHR:
		return []Role{RoleEmployee}
	default:
		return []Role{RoleEmployee}
	}
}
