package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// Session is the client-held proof of authentication: the backend's opaque
// bearer token plus role and username cached for page gating and display.
// Exactly one token/role/username triple exists at a time; it is written as
// a whole at login and cleared as a whole at logout.
type Session struct {
	Token    string
	Role     UserRole
	Username string
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
