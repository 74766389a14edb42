package auth

import (
	"errors"

	platformauth "github.com/patient360/backend/internal/platform/auth"
)

// ErrInvalidCredentials is returned when the login form is incomplete.
var ErrInvalidCredentials = errors.New("username and password are required")

type Service struct {
	tokens *Store
}

func NewService(tokens *Store) *Service {
	return &Service{tokens: tokens}
}

// Login accepts any non-empty username/password pair. Credential
// verification is intentionally absent; the portal is a demo surface.
func (s *Service) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	token := s.tokens.Issue(username)
	return &LoginResult{
		Token:   TokenResponse{AccessToken: token, TokenType: "bearer"},
		Profile: UserProfile{Username: username, Email: username + "@example.com"},
	}, nil
}

// Status inspects an Authorization header value. It never fails: anything
// short of a known token reports authenticated=false.
func (s *Service) Status(header string) Status {
	token, ok := platformauth.ParseBearer(header)
	if !ok {
		return Status{}
	}

	username, ok := s.tokens.Lookup(token)
	if !ok {
		return Status{}
	}
	return Status{Authenticated: true, Username: username}
}
