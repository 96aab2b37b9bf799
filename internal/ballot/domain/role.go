package domain

// Role is the single authorization attribute a user carries.
type Role string

const (
	RoleVoter Role = "voter"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleVoter || r == RoleAdmin
}

// ParseRole maps a stored or submitted role name to a Role. An empty name is
// a voter.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleVoter, true
	}
	r := Role(s)
	return r, r.Valid()
}

// CanAccess reports whether a caller holding role may use a resource that
// requires the role named by required. Admins satisfy every requirement,
// voters only their own.
func CanAccess(role, required string) bool {
	switch Role(role) {
	case RoleAdmin:
		return true
	case RoleVoter:
		return Role(required) == RoleVoter
	default:
		return false
	}
}
