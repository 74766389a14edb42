package auth

// TokenResponse is the bearer token issued at login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserProfile is the minimal profile synthesized for an authenticated user.
// The email is a placeholder derived from the username.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult bundles the issued token with the user profile.
type LoginResult struct {
	Token   TokenResponse `json:"token"`
	Profile UserProfile   `json:"profile"`
}

// Status reports whether a presented token is currently valid.
type Status struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
