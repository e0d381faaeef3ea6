// Package access is the pure policy layer: given a session and the
// capability a view requires, it decides allow or deny and computes the
// redirect target. It performs no I/O and holds no state.
package access

import "clinicdesk/models"

// LoginPath is where unauthenticated access gets redirected.
const LoginPath = "/login"

// Decision is the outcome of a guard check.
type Decision struct {
	Allow bool

	// RedirectTo is set only for unauthenticated denials. A role
	// mismatch with an existing session denies in place instead, so a
	// logged-in non-admin does not bounce in a redirect loop.
	RedirectTo string

	// FromPath preserves the originally requested path so navigation
	// could be resumed after login.
	FromPath string

	// Reason describes a denial in user-facing terms.
	Reason string
}

// Decide checks a session against the role a view requires. An empty
// required role means the view only needs authentication.
func Decide(session *models.Session, required models.Role, currentPath string) Decision {
	if !session.Valid() {
		return Decision{
			RedirectTo: LoginPath,
			FromPath:   currentPath,
			Reason:     "authentication required",
		}
	}
	if required != "" && session.User.Role != required {
		return Decision{
			Reason: "access denied: requires " + string(required) + " role",
		}
	}
	return Decision{Allow: true}
}
