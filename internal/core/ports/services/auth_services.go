package services

import (
	"context"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	"github.com/contapyme/contapyme_backend/internal/dto"
)

// AuthSvcFacade manages user credentials and session tokens.
type AuthSvcFacade interface {
	// Register creates a CLIENT user with a bcrypt password hash.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and returns the user with a signed session token.
	// Unknown emails and wrong passwords both return ErrUnauthorized.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// GetUserByID retrieves the profile behind a session.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
