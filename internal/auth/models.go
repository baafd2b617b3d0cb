package auth

import (
	"gatherly/internal/users"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	City     string `json:"city" binding:"omitempty,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// AuthResponse mirrors the login/register payload the clients expect.
// Token carries the access token under the key existing clients read;
// access/refresh expose the full pair for clients that rotate tokens.
type AuthResponse struct {
	Token   string             `json:"token"`
	Access  string             `json:"access"`
	Refresh string             `json:"refresh"`
	User    users.UserResponse `json:"user"`
}
