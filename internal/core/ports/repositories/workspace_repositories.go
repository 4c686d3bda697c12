package repositories

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a specific workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// FindMembershipByUserID returns the first membership of the user.
	// A user belongs to at most one workspace.
	FindMembershipByUserID(ctx context.Context, userID string) (*domain.WorkspaceUser, error)

	// ListMembers lists every member of a workspace with their user details.
	ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceUser, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// CreateWorkspaceWithDefaults inserts the workspace, the owner membership and
	// the seeded categories in a single transaction.
	CreateWorkspaceWithDefaults(ctx context.Context, workspace domain.Workspace, owner domain.WorkspaceUser, categories []domain.Category) error

	// UpdateWorkspace updates name, profile type and icon.
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error
}

// WorkspaceMembershipManager defines operations for managing workspace memberships
type WorkspaceMembershipManager interface {
	// AddMember adds a user to a workspace.
	AddMember(ctx context.Context, membership domain.WorkspaceUser) error

	// RemoveMember removes a user from a workspace.
	RemoveMember(ctx context.Context, workspaceID, userID string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMembershipManager
}
