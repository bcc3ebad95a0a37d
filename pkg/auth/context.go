package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const usernameKey contextKey = "username"

// ErrUserNotFound is returned when no authenticated username exists in the
// request context. Handlers should return 401 when this error occurs.
var ErrUserNotFound = errors.New("username not found in context")

// UsernameFromCtx extracts the authenticated username from the request
// context. Returns ErrUserNotFound for unauthenticated requests.
func UsernameFromCtx(ctx context.Context) (string, error) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "", ErrUserNotFound
	}
	return username, nil
}

// WithUsername returns a new context with the given username attached.
// Used by authentication middleware after validating the session.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
