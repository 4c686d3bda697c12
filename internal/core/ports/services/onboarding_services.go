package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// OnboardingSvc covers the first steps of a new user, before a workspace
// scope can be resolved for them.
type OnboardingSvc interface {
	CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)
	CreateFirstAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
}
