// Package auth provides the bearer-token gate for protected routes.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

// UsernameKey is the request-context key holding the authenticated username.
const UsernameKey contextKey = "auth.username"

// TokenValidator resolves an opaque bearer token to a username. The token
// store in the auth domain implements it; tests substitute their own.
type TokenValidator interface {
	Lookup(token string) (string, bool)
}

// ParseBearer extracts the token from an Authorization header value of the
// form "Bearer <token>". The scheme comparison is case-insensitive.
func ParseBearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// Bearer returns middleware that rejects requests lacking a valid bearer
// token and stores the resolved username on the request context.
func Bearer(tokens TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			token, ok := ParseBearer(header)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			username, ok := tokens.Lookup(token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := context.WithValue(c.Request().Context(), UsernameKey, username)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UsernameFromContext returns the username placed by Bearer, if any.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
