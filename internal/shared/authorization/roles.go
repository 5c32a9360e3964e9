package authorization

// UserRole is the role assigned to an account. Role assignment is
// immutable once the account exists.
type UserRole string

const (
	RoleManager UserRole = "MANAGER"
	RoleSupport UserRole = "SUPPORT"
	RoleUser    UserRole = "USER"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsManager() bool {
	return r == RoleManager
}

func (r UserRole) IsSupport() bool {
	return r == RoleSupport
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleManager, RoleSupport, RoleUser:
		return true
	}
	return false
}

// CanBeAssignee reports whether an account with this role may be set as
// a ticket assignee. USER-role accounts are never eligible.
func (r UserRole) CanBeAssignee() bool {
	return r == RoleManager || r == RoleSupport
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
