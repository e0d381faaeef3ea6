package utils

import "fmt"

// AuthError covers login failures and locally rejected credential-less
// mutations ("login as admin first").
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(msg string) error {
	return &AuthError{Message: msg}
}

// ValidationError is raised for missing or invalid local input, before
// any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NetworkError wraps a non-2xx response or a transport failure from the
// clinic API.
type NetworkError struct {
	Status int    // 0 when the request never got a response
	Body   string // server error body, trimmed; may be empty
}

func (e *NetworkError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status code %d: %s", e.Status, e.Body)
	}
	if e.Status != 0 {
		return fmt.Sprintf("unexpected status code %d", e.Status)
	}
	return "request failed"
}

// StateCorruptionError marks an unparsable persisted session. It is
// recovered silently at startup by discarding the record; callers only
// ever see it in logs.
type StateCorruptionError struct {
	Reason string
}

func (e *StateCorruptionError) Error() string {
	return "corrupt persisted session: " + e.Reason
}
