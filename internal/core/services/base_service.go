package services

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, so "today" can be fixed in tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

func newBaseService(opts []ServiceOption) BaseService {
	b := BaseService{clock: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// Today returns the calendar date of Now.
func (s *BaseService) Today() civil.Date {
	return civil.DateOf(s.Now())
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

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LogFailure logs err at Error when it is unexpected and at Debug when it is
// an expected outcome such as not found or a validation failure.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if apperrors.StatusCode(err) == http.StatusInternalServerError {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("reason", err.Error()))
	args = append(args, keyvals...)
	s.LogDebug(ctx, msg, args...)
}

// AuthorizeOwner fails with a forbidden error unless scope has the owner role.
func (s *BaseService) AuthorizeOwner(ctx context.Context, scope domain.WorkspaceScope) error {
	if scope.IsOwner() {
		return nil
	}
	s.GetLogger(ctx).Warn("Owner-only action attempted by member",
		slog.String("user_id", scope.UserID),
		slog.String("workspace_id", scope.WorkspaceID))
	return apperrors.NewForbiddenError("only the workspace owner can perform this action")
}

func auditFields(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
