package services

import (
	"context"
	"log/slog"

	"github.com/contapyme/contapyme_backend/internal/core/domain"
	portssvc "github.com/contapyme/contapyme_backend/internal/core/ports/services"
	"github.com/contapyme/contapyme_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeCompany checks that the caller may act on companyID.
func (s *BaseService) AuthorizeCompany(ctx context.Context, caller domain.SessionUser, companyID string) error {
	if s.CompanyAuthorizer != nil {
		return s.CompanyAuthorizer.AuthorizeCompanyAccess(ctx, caller, companyID)
	}
	// Without an authorizer the database row-level policies are the only guard.
	s.LogDebug(ctx, "No company authorizer provided, access granted by default",
		slog.String("user_id", caller.UserID),
		slog.String("company_id", companyID))
	return nil
}
