// Package auth is responsible for authentication and authorization plumbing:
// issuing and verifying bearer tokens, and the request guard that resolves a
// token into the authenticated user.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account. The hashed password is excluded from JSON
// serialization and is blanked before the user is attached to a request
// context, so it can never leak into a response body.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user with the password hash removed.
func (u *User) Sanitized() *User {
	c := *u
	c.HashedPassword = ""
	return &c
}
