package domain

import "time"

// ProfileType describes what kind of finances a workspace tracks.
type ProfileType string

const (
	ProfilePersonal ProfileType = "personal"
	ProfileBusiness ProfileType = "business"
)

// Workspace is the tenant boundary: every account, card, category,
// transaction and goal belongs to exactly one workspace.
type Workspace struct {
	WorkspaceID string      `json:"workspaceID"`
	Name        string      `json:"name"`
	ProfileType ProfileType `json:"profileType"`
	IconEmoji   string      `json:"iconEmoji"`
	AuditFields
}

// WorkspaceRole defines the possible roles a user can have within a workspace.
type WorkspaceRole string

const (
	RoleOwner  WorkspaceRole = "owner"
	RoleMember WorkspaceRole = "member"
)

// WorkspaceUser represents the membership of a User in a Workspace.
type WorkspaceUser struct {
	UserID      string        `json:"userID"`
	UserName    string        `json:"userName"`
	UserEmail   string        `json:"userEmail"`
	WorkspaceID string        `json:"workspaceID"`
	Role        WorkspaceRole `json:"role"`
	JoinedAt    time.Time     `json:"joinedAt"`
}

// WorkspaceScope is the resolved tenant for a single request. It is built
// once per request from the caller's membership and passed explicitly into
// every service and repository call.
type WorkspaceScope struct {
	WorkspaceID string
	UserID      string
	Role        WorkspaceRole
}

// IsOwner reports whether the caller owns the workspace.
func (s WorkspaceScope) IsOwner() bool {
	return s.Role == RoleOwner
}
