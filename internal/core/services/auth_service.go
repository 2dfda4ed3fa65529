package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contapyme/contapyme_backend/internal/apperrors"
	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portsrepo "github.com/contapyme/contapyme_backend/internal/core/ports/repositories"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/dto"
	"github.com/contapyme/contapyme_backend/internal/platform/config"
	"github.com/contapyme/contapyme_backend/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultPlan  = "free"
	statusActive = "active"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates the credential and session token service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		Role:         domain.RoleClient,
		Plan:         defaultPlan,
		Status:       statusActive,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.NewAppError(401, "Credenciales inválidas", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected: wrong password", slog.String("user_id", user.UserID))
		return nil, "", apperrors.NewAppError(401, "Credenciales inválidas", apperrors.ErrUnauthorized)
	}

	if user.Status != "" && user.Status != statusActive {
		return nil, "", apperrors.NewAppError(403, "Cuenta deshabilitada", apperrors.ErrForbidden)
	}

	session := domain.SessionUser{UserID: user.UserID, Email: user.Email, Role: user.Role}
	token, err := utils.GenerateSessionToken(session, s.cfg.SessionSecret, s.cfg.SessionExpiryDuration, s.cfg.SessionIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", user.UserID))
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}
