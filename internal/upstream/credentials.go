package upstream

import "sync"

// CredentialSource provides the bearer token attached to every outgoing request.
type CredentialSource interface {
	Token() string
}

// TokenStore is the process-wide credential. It is written by the login flow
// and read by every request.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates a TokenStore seeded with an optional token.
func NewTokenStore(initial string) *TokenStore {
	return &TokenStore{token: initial}
}

// Token returns the current token, or "" when none is set.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the current token.
func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}
