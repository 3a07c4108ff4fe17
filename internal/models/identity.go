package models

// Role is the caller's role as supplied by the identity provider.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one the engine knows about.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// Identity is a caller identity supplied externally per call. The engine
// never creates or validates identities itself; a nil *Identity means no
// caller is logged in.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the identity is present and has the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
