package model

// Role is the authorization level embedded in a session credential.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleButcher Role = "butcher"
	RoleCooker  Role = "cooker"
)

// KnownRole reports whether the claim value is one this system understands.
func KnownRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleButcher, RoleCooker:
		return true
	}
	return false
}

// Credential is the token and role claim issued by the upstream on login.
type Credential struct {
	Token string
	Role  Role
}

// Registration is the admin-only staff provisioning request.
type Registration struct {
	FullName string
	Email    string
	Password string
	Role     Role
}
