package session

import (
	"context"
	"sync"

	"clinicdesk/models"
)

// AuthAPI is the slice of the clinic API the session service needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
}

// SessionService owns the authenticated session: it is the only writer
// to the persistence medium, and every consumer that needs the current
// credential reads it through Current.
type SessionService interface {
	// Initialize restores a persisted session. Structurally invalid or
	// unparsable records are discarded and nil is returned; it never fails.
	Initialize() *models.Session

	// Login exchanges credentials with the auth collaborator. On success
	// the current session is atomically replaced and persisted.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Logout clears the in-memory session and the persisted copy
	// together. No network call.
	Logout()

	// Current returns the session, or nil when logged out.
	Current() *models.Session
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	API   AuthAPI
	Store Store

	mu      sync.Mutex
	current *models.Session
}

func NewSessionService(api AuthAPI, store Store) *DefaultSessionService {
	return &DefaultSessionService{API: api, Store: store}
}
