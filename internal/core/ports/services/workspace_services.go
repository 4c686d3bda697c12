package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// GetWorkspace returns the workspace the scope points at.
	GetWorkspace(ctx context.Context, scope domain.WorkspaceScope) (*domain.Workspace, error)

	// ListMembers returns every membership of the workspace with user details.
	ListMembers(ctx context.Context, scope domain.WorkspaceScope) ([]domain.WorkspaceUser, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace creates a workspace owned by userID together with the
	// default categories. A user that already belongs to a workspace gets a conflict.
	CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)

	// UpdateWorkspace changes name, profile type or icon. Owner only.
	UpdateWorkspace(ctx context.Context, scope domain.WorkspaceScope, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)
}

// WorkspaceMembershipSvc defines operations for managing workspace membership
type WorkspaceMembershipSvc interface {
	// AddMember adds an existing user, looked up by email. Owner only.
	AddMember(ctx context.Context, scope domain.WorkspaceScope, req dto.AddMemberRequest) (*domain.WorkspaceUser, error)

	// RemoveMember removes a member. Owner only; owners cannot remove themselves.
	RemoveMember(ctx context.Context, scope domain.WorkspaceScope, userID string) error
}

// WorkspaceAuthorizerSvc resolves and checks the tenant of a request.
type WorkspaceAuthorizerSvc interface {
	// ResolveScope looks up the caller's membership. A caller without a
	// workspace gets a not-found error.
	ResolveScope(ctx context.Context, userID string) (*domain.WorkspaceScope, error)

	// AuthorizeOwner fails with a forbidden error unless the scope has the owner role.
	AuthorizeOwner(ctx context.Context, scope domain.WorkspaceScope) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
	WorkspaceMembershipSvc
	WorkspaceAuthorizerSvc
}
