// Package users implements user account management: registration, login,
// and profile read/update for the authenticated user.
package users

import "github.com/google/uuid"

// RegisterRequest represents the registration request payload.
// The validate tags are the declarative rule set evaluated by the
// validation layer before the handler runs.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required" example:"João Silva"`
	Email           string `json:"email" validate:"required,email" example:"joao@example.com"`
	Password        string `json:"password" validate:"required,min=5" example:"senha123"`
	ConfirmPassword string `json:"confirmpassword" validate:"required,eqfield=Password" example:"senha123"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"joao@example.com"`
	Password string `json:"password" validate:"required" example:"senha123"`
}

// UpdateUserRequest represents a profile update. Both fields are optional;
// pointers distinguish "absent" from "present". The e-mail is immutable and
// deliberately has no field here.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"João S. Santos"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=5" example:"novasenha"`
}

// AuthResponse is returned by register and login: the user id and a signed
// bearer token bound to it.
type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Token string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
