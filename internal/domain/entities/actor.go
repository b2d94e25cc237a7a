package entities

// Role is the caller's role as carried by the access token.
type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// Actor is the authenticated caller passed explicitly into use cases.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) Authenticated() bool {
	return a.UserID != ""
}

// IsStaff reports whether the actor may use back-office operations.
func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff || a.Role == RoleAdmin
}
