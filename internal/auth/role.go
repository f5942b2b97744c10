package auth

import "strings"

// Role is the normalized account role carried in tokens
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

// ManagementRoles may administer menus and assignments
var ManagementRoles = []Role{RoleAdmin, RoleStaff, RoleManager}

// ParseRole normalizes a role string; unknown values report false
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStaff:
		return RoleStaff, true
	case RoleManager:
		return RoleManager, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}

// In reports whether r is one of roles
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
