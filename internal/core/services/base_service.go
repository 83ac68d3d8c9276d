package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/campus_connect/internal/apperrors"
	"github.com/SscSPs/campus_connect/internal/core/domain"
	portssvc "github.com/SscSPs/campus_connect/internal/core/ports/services"
	"github.com/SscSPs/campus_connect/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	OwnershipGuard portssvc.OwnershipGuardSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// AuthorizeOwner runs the ownership guard and rewrites a refusal with an action-specific message.
func (s *BaseService) AuthorizeOwner(ctx context.Context, resource domain.OwnedResource, userID, action string) error {
	err := s.OwnershipGuard.Authorize(resource, userID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperrors.ErrForbidden) {
		s.GetLogger(ctx).Warn("Ownership check failed",
			slog.String("acting_user_id", userID),
			slog.String("owner_id", resource.GetOwnerID()),
			slog.String("action", action))
		return apperrors.NewForbiddenError("You do not have permission to " + action + " this item")
	}
	return err
}
