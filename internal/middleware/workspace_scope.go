package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// ScopeResolver looks up the workspace membership of a user.
type ScopeResolver interface {
	ResolveScope(ctx context.Context, userID string) (*domain.WorkspaceScope, error)
}

// WorkspaceScopeMiddleware resolves the caller's workspace once per request
// and stores it in the request context. It must run after AuthMiddleware.
// A caller without a workspace gets 404.
func WorkspaceScopeMiddleware(resolver ScopeResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		scope, err := resolver.ResolveScope(c.Request.Context(), userID)
		if err != nil {
			status := apperrors.StatusCode(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to resolve workspace", slog.String("error", err.Error()))
			} else {
				logger.Warn("Workspace not resolved", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(status, gin.H{"error": apperrors.PublicMessage(err, "Failed to resolve workspace")})
			return
		}

		ctx := context.WithValue(c.Request.Context(), scopeKey, *scope)
		ctx = WithLogger(ctx, logger.With(slog.String("workspace_id", scope.WorkspaceID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
