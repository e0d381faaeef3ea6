package models

// Role is the access role carried by an authenticated user.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleAdmin   Role = "ADMIN"
)

// AuthUser is the identity half of a session.
type AuthUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session is the client-held proof of authentication: an opaque token
// plus the identity it represents. Token and User are always set and
// cleared together; a session with only one of them is invalid.
type Session struct {
	Token string    `json:"token"`
	User  *AuthUser `json:"user"`
}

// Valid reports whether the session satisfies the token+user pairing
// invariant.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}
