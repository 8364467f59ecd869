package auth

import "github.com/gymgrid/gymgrid-backend/internal/serializer"

// LoginRequest carries the credentials posted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the minted token plus the flattened user.
type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	ExpiresIn   int64                `json:"expires_in"`
	User        *serializer.UserView `json:"user"`
}

// RegisterRequest carries a self-service signup.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Phone     *string `json:"phone" validate:"omitempty,min=6"`
	Role      string  `json:"role" validate:"required"`
}

// RegisterResponse mirrors the login payload so clients can sign in
// immediately after signup.
type RegisterResponse struct {
	AccessToken string               `json:"access_token"`
	ExpiresIn   int64                `json:"expires_in"`
	User        *serializer.UserView `json:"user"`
}

// PasswordResetRequest starts the forgot-password flow.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm completes the flow with the emailed token.
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
