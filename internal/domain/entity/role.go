package entity

// Role is the implicit role of an authenticated principal.
type Role string

const (
	// RoleUser is every verified principal without an admins row.
	RoleUser Role = "user"
	// RoleAdmin is a verified principal with a matching admins row.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// DefaultRoles are inserted into the roles table when the schema is created.
var DefaultRoles = []Role{RoleAdmin, RoleUser}
