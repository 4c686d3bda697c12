package mapping

import (
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/models"
)

func ToModelWorkspace(d domain.Workspace) models.Workspace {
	return models.Workspace{
		WorkspaceID: d.WorkspaceID,
		Name:        d.Name,
		ProfileType: string(d.ProfileType),
		IconEmoji:   d.IconEmoji,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainWorkspace(m models.Workspace) domain.Workspace {
	return domain.Workspace{
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		ProfileType: domain.ProfileType(m.ProfileType),
		IconEmoji:   m.IconEmoji,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainWorkspaceUser(m models.WorkspaceMember) domain.WorkspaceUser {
	return domain.WorkspaceUser{
		UserID:      m.UserID,
		UserName:    m.UserName,
		UserEmail:   m.UserEmail,
		WorkspaceID: m.WorkspaceID,
		Role:        domain.WorkspaceRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
}

func ToDomainWorkspaceUserSlice(ms []models.WorkspaceMember) []domain.WorkspaceUser {
	ds := make([]domain.WorkspaceUser, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkspaceUser(m)
	}
	return ds
}
