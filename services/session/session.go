package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinicdesk/models"
	"clinicdesk/utils"
)

// Initialize restores the persisted session, discarding anything that
// fails to parse or violates the token+user invariant. Fail-open to
// "no session": the user simply logs in again.
func (s *DefaultSessionService) Initialize() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Store.Load()
	if err != nil {
		utils.GetLogger().Warn("session: failed to read persisted session", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	restored := &models.Session{}
	if err := json.Unmarshal(data, restored); err != nil {
		s.discardCorrupt(&utils.StateCorruptionError{Reason: err.Error()})
		return nil
	}
	if !restored.Valid() {
		s.discardCorrupt(&utils.StateCorruptionError{Reason: "token and user must be set together"})
		return nil
	}
	if tokenExpired(restored.Token, time.Now()) {
		utils.GetLogger().Info("session: persisted token expired, discarding",
			zap.String("email", restored.User.Email))
		if err := s.Store.Clear(); err != nil {
			utils.GetLogger().Warn("session: failed to clear expired session", zap.Error(err))
		}
		return nil
	}

	s.current = restored
	return restored
}

// discardCorrupt drops an unreadable record. Recovery is silent; the
// corruption only shows up in logs. Caller holds the lock.
func (s *DefaultSessionService) discardCorrupt(cause error) {
	utils.GetLogger().Warn("session: discarding persisted session", zap.Error(cause))
	if err := s.Store.Clear(); err != nil {
		utils.GetLogger().Warn("session: failed to clear corrupt session", zap.Error(err))
	}
	s.current = nil
}

func (s *DefaultSessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	fresh, err := s.API.Login(ctx, email, password)
	if err != nil {
		var netErr *utils.NetworkError
		if errors.As(err, &netErr) {
			msg := netErr.Body
			if msg == "" {
				msg = "Login failed"
			}
			return nil, &utils.AuthError{Message: msg}
		}
		return nil, err
	}
	if !fresh.Valid() {
		return nil, &utils.AuthError{Message: "login response missing token or user"}
	}

	data, err := json.Marshal(fresh)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Store.Save(data); err != nil {
		// Session is unusable across restarts if it cannot be persisted;
		// better to fail the login than hold a state the store does not.
		return nil, err
	}
	s.current = fresh

	utils.GetLogger().Info("session: logged in",
		zap.String("email", fresh.User.Email),
		zap.String("role", string(fresh.User.Role)),
	)
	return fresh, nil
}

func (s *DefaultSessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.Store.Clear(); err != nil {
		utils.GetLogger().Warn("session: failed to clear persisted session", zap.Error(err))
	}
	utils.GetLogger().Info("session: logged out")
}

func (s *DefaultSessionService) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
