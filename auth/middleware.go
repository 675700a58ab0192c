package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/user/eventos-go/apperror"
)

// UserLoader resolves a user id to a user record. The guard uses it to
// confirm that the identity inside a token still exists; the user service
// provides the production implementation.
type UserLoader interface {
	UserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// Guard returns the authentication middleware. It extracts the bearer token
// from the Authorization header, verifies it, loads the user it names, and
// attaches a sanitized copy to the request context. A token whose user no
// longer exists is treated the same as an invalid token.
func Guard(tokens *TokenService, loader UserLoader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("Acesso negado!", nil))
				return
			}

			// The Authorization header must be in the format "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("Acesso negado!", nil))
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("Token inválido!", err))
				return
			}

			user, err := loader.UserByID(r.Context(), userID)
			if err != nil {
				// The identity no longer exists (or the lookup failed);
				// either way the token does not resolve to a user.
				WriteError(w, r, apperror.NewAuthError("Token inválido!", err))
				return
			}

			ctx := WithUser(r.Context(), user.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
