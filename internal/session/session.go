// Package session holds the authenticated cashier for the lifetime of the
// application run (login to logout). Token semantics live server-side; this is
// only the client-side holder the API layer reads its bearer token from.
package session

import (
	"sync"

	"github.com/NahlBee97/komputama-kasir-frontend/internal/domain"
)

type Session struct {
	mu    sync.RWMutex
	user  *domain.User
	token string
}

func New() *Session {
	return &Session{}
}

// Set installs the logged-in user and bearer token.
func (s *Session) Set(user domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	s.token = token
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged-in user, or nil.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Clear drops the session. Called on logout and when the server answers 401.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// LoggedIn reports whether a user is set.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
