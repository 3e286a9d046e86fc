package dto

import "pocket-wallet/internal/domain/entity"

// LoginRequest carries the login form fields. Presence is validated by the
// session store, not by binding tags, so empty submissions surface the same
// failure notification the store emits.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest carries the signup form fields
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest carries the reset-request form fields
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// NewPasswordRequest carries the password-change form fields
type NewPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SessionResponse wraps the signed-in user
type SessionResponse struct {
	User *entity.User `json:"user"`
}

// MessageResponse is a minimal acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}
