package dto

import "github.com/contapyme/contapyme_backend/internal/core/domain"

// RegisterRequest defines the data needed to create a user account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
}

// LoginRequest carries credentials and an optional post-login destination.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RedirectTo string `json:"redirect_to" binding:"omitempty,max=512,localpath"`
}

// UserResponse defines the public profile of a user.
type UserResponse struct {
	UserID string          `json:"id"`
	Email  string          `json:"email"`
	Name   string          `json:"name,omitempty"`
	Role   domain.UserRole `json:"role"`
	Plan   string          `json:"plan,omitempty"`
	Status string          `json:"status,omitempty"`
}

// SessionResponse reports the caller's session. PendingRedirect is returned
// once after a login that asked for it.
type SessionResponse struct {
	Authenticated   bool          `json:"authenticated"`
	User            *UserResponse `json:"user,omitempty"`
	PendingRedirect string        `json:"pending_redirect,omitempty"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Plan:   u.Plan,
		Status: u.Status,
	}
}

// SessionUserResponse converts the identity carried by a session cookie.
func SessionUserResponse(s domain.SessionUser) *UserResponse {
	return &UserResponse{UserID: s.UserID, Email: s.Email, Role: s.Role}
}
