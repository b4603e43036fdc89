package auth

// IsValidRole checks if the role is one of the predefined valid roles
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleIsAtLeast checks if a role meets the minimum required level
func RoleIsAtLeast(r, minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleUser:  0,
		RoleAdmin: 1,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleUser,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, IsValidRole(role)
}

// IsValidStatus checks if the status is one of the predefined lifecycle states
func IsValidStatus(s UserStatus) bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusOngoing,
		UserStatusInactive, UserStatusDeleted:
		return true
	default:
		return false
	}
}

// RequireRole validates that claims carry at least the given role
func RequireRole(claims AuthClaims, minRole UserRole) error {
	if claims == nil {
		return ErrForbidden
	}
	if !claims.IsAtLeast(minRole) {
		return ErrForbidden
	}
	return nil
}
