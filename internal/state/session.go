package state

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"taskman/internal/domain"
)

// SessionState owns the authenticated identity and the login request status.
// It is constructed once at startup and restored from the persisted store;
// a missing or malformed persisted session yields an empty one.
type SessionState struct {
	svc    domain.TaskService
	store  domain.KeyValueStore
	logger *slog.Logger

	mu      sync.Mutex
	session domain.Session
	login   domain.RequestStatus
}

// NewSessionState creates a SessionState, restoring any persisted session.
func NewSessionState(svc domain.TaskService, store domain.KeyValueStore, logger *slog.Logger) *SessionState {
	s := &SessionState{
		svc:    svc,
		store:  store,
		logger: logger,
		login:  domain.NewRequestStatus(),
	}
	s.session, _ = loadJSON[domain.Session](store, authKey)
	return s
}

// Login exchanges credentials for a session. On success the session is
// written through to the persisted store before the transition completes, so
// a restart immediately after login observes it. On failure the session is
// left untouched and the login status carries the service's message.
func (s *SessionState) Login(ctx context.Context, username, password string) error {
	return runRequest(&s.mu, &s.login, "Login failed",
		func() (domain.Session, error) {
			session, err := s.svc.Login(ctx, username, password)
			if err != nil {
				return domain.Session{}, err
			}
			if err := saveJSON(s.store, authKey, session); err != nil {
				return domain.Session{}, fmt.Errorf("write through session: %w", err)
			}
			return session, nil
		},
		func(session domain.Session) {
			s.session = session
			if s.logger != nil {
				s.logger.Info("login fulfilled", "username", session.Username)
			}
		})
}

// Logout clears the session and its persisted copy immediately. No network
// call is made, and logging out without an active session is a no-op.
func (s *SessionState) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
	_ = s.store.Remove(authKey)
	if s.logger != nil {
		s.logger.Info("logged out")
	}
}

// Session returns a snapshot of the current session.
func (s *SessionState) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// LoginStatus returns a snapshot of the login request status.
func (s *SessionState) LoginStatus() domain.RequestStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.login
}

// Token returns the current credential, or "" when logged out.
func (s *SessionState) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}
