package mapping

import (
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/models"
)

func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		WorkspaceID:   d.WorkspaceID,
		AccountID:     d.AccountID,
		Name:          d.Name,
		Emoji:         d.Emoji,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		TargetDate:    ToModelDatePtr(d.TargetDate),
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		WorkspaceID:   m.WorkspaceID,
		AccountID:     m.AccountID,
		Name:          m.Name,
		Emoji:         m.Emoji,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    ToDomainDatePtr(m.TargetDate),
		Status:        domain.GoalStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}
