package auth

import "sync"

// Store maps opaque bearer tokens to usernames. Tokens never expire and are
// never revoked within a process lifetime; the mapping resets on restart.
// Multiple tokens may map to the same username.
type Store struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewStore() *Store {
	return &Store{tokens: make(map[string]string)}
}

// Issue derives a token from the username and records the mapping. The same
// username always yields the same token. The derivation is deliberately not
// cryptographically random; this is a demo credential.
func (s *Store) Issue(username string) string {
	token := "token-" + username

	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()

	return token
}

// Lookup resolves a token to its username. Pure read, no side effects.
func (s *Store) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.tokens[token]
	return username, ok
}
