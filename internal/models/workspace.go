package models

import "time"

// Workspace is the row shape of the workspaces table.
type Workspace struct {
	WorkspaceID string `db:"workspace_id"`
	Name        string `db:"name"`
	ProfileType string `db:"profile_type"`
	IconEmoji   string `db:"icon_emoji"`
	AuditFields
}

// WorkspaceMember is a workspace_users row joined with the user's name and email.
type WorkspaceMember struct {
	UserID      string    `db:"user_id"`
	WorkspaceID string    `db:"workspace_id"`
	Role        string    `db:"role"`
	JoinedAt    time.Time `db:"joined_at"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
}
