package authorization

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleCitizen   UserRole = "citizen"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role can manage issues (status changes,
// internal comments, history access).
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleModerator || r == RoleCitizen
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCitizen
}
