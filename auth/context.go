package auth

import (
	"context"
)

// contextKey is a custom type for context keys, preventing collisions with
// keys defined in other packages.
type contextKey string

const userContextKey contextKey = "auth_user"

// WithUser returns a child context carrying the authenticated user.
// The guard middleware stores a sanitized copy here; downstream handlers
// read it back with UserFrom.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom extracts the authenticated user from the context. The second
// return value reports whether a user was present.
func UserFrom(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok
}
