package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	user *User
	err  error
}

func (s *stubLoader) UserByID(_ context.Context, _ uuid.UUID) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func guardedRequest(t *testing.T, svc *TokenService, loader UserLoader, authHeader string) (*httptest.ResponseRecorder, *User) {
	t.Helper()

	var seen *User
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = UserFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Guard(svc, loader)(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestGuardMissingHeader(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour)

	rec, seen := guardedRequest(t, svc, &stubLoader{}, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Acesso negado!"}, decodeErrors(t, rec))
	require.Nil(t, seen)
}

func TestGuardMalformedHeader(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour)

	for _, header := range []string{"Bearer", "Token abc", "Bearer a b"} {
		rec, seen := guardedRequest(t, svc, &stubLoader{}, header)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Equal(t, []string{"Acesso negado!"}, decodeErrors(t, rec))
		require.Nil(t, seen)
	}
}

func TestGuardInvalidToken(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour)

	rec, seen := guardedRequest(t, svc, &stubLoader{}, "Bearer not-a-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Token inválido!"}, decodeErrors(t, rec))
	require.Nil(t, seen)
}

func TestGuardDeletedUser(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	loader := &stubLoader{err: errors.New("no rows")}
	rec, seen := guardedRequest(t, svc, loader, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"Token inválido!"}, decodeErrors(t, rec))
	require.Nil(t, seen)
}

func TestGuardAttachesSanitizedUser(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	loader := &stubLoader{user: &User{
		ID:             userID,
		Name:           "Ana",
		Email:          "ana@example.com",
		HashedPassword: "bcrypt-hash",
	}}
	rec, seen := guardedRequest(t, svc, loader, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, userID, seen.ID)
	require.Equal(t, "ana@example.com", seen.Email)
	require.Empty(t, seen.HashedPassword)
}
