package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondWithError answers with the status the error maps to and a body of
// {"error": message}. Unexpected errors get fallback and are logged in full.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromContext(c)
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err, fallback)})
}

// respondBindError answers 400 with the first violated binding rule.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromContext(c).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": dto.FirstValidationMessage(err)})
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}

func requireScope(c *gin.Context) (domain.WorkspaceScope, bool) {
	scope, ok := middleware.GetScopeFromContext(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("Workspace scope not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return scope, ok
}

// pathID reads a UUID path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a valid UUID"})
		return "", false
	}
	return id, true
}
