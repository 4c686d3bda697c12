package dto

import (
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// CreateWorkspaceRequest defines the data needed to create the caller's workspace.
type CreateWorkspaceRequest struct {
	Name        string             `json:"name" binding:"required,max=100"`
	ProfileType domain.ProfileType `json:"profileType" binding:"omitempty,oneof=personal business"`
	IconEmoji   string             `json:"iconEmoji" binding:"omitempty,max=16"`
}

// UpdateWorkspaceRequest defines the data allowed for updating a workspace.
// Pointers distinguish omitted fields from zero values.
type UpdateWorkspaceRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=100"`
	ProfileType *domain.ProfileType `json:"profileType" binding:"omitempty,oneof=personal business"`
	IconEmoji   *string             `json:"iconEmoji" binding:"omitempty,max=16"`
}

// AddMemberRequest invites an existing user by email.
type AddMemberRequest struct {
	Email string               `json:"email" binding:"required,email"`
	Role  domain.WorkspaceRole `json:"role" binding:"omitempty,oneof=owner member"`
}

// WorkspaceResponse defines the data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID   string               `json:"workspaceID"`
	Name          string               `json:"name"`
	ProfileType   domain.ProfileType   `json:"profileType"`
	IconEmoji     string               `json:"iconEmoji"`
	Role          domain.WorkspaceRole `json:"role,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// WorkspaceMemberResponse is one entry of the member list.
type WorkspaceMemberResponse struct {
	UserID   string               `json:"userID"`
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Role     domain.WorkspaceRole `json:"role"`
	JoinedAt time.Time            `json:"joinedAt"`
}

// ToWorkspaceResponse converts a domain.Workspace to WorkspaceResponse DTO.
// role is the caller's role and may be empty.
func ToWorkspaceResponse(ws *domain.Workspace, role domain.WorkspaceRole) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID:   ws.WorkspaceID,
		Name:          ws.Name,
		ProfileType:   ws.ProfileType,
		IconEmoji:     ws.IconEmoji,
		Role:          role,
		CreatedAt:     ws.CreatedAt,
		CreatedBy:     ws.CreatedBy,
		LastUpdatedAt: ws.LastUpdatedAt,
	}
}

// ToWorkspaceMemberResponse converts a domain.WorkspaceUser to WorkspaceMemberResponse DTO.
func ToWorkspaceMemberResponse(m *domain.WorkspaceUser) WorkspaceMemberResponse {
	return WorkspaceMemberResponse{
		UserID:   m.UserID,
		Name:     m.UserName,
		Email:    m.UserEmail,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

// ToListWorkspaceMemberResponse converts memberships to their response DTOs.
func ToListWorkspaceMemberResponse(members []domain.WorkspaceUser) []WorkspaceMemberResponse {
	res := make([]WorkspaceMemberResponse, len(members))
	for i := range members {
		res[i] = ToWorkspaceMemberResponse(&members[i])
	}
	return res
}
