package mapping

import (
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:   d.CategoryID,
		WorkspaceID:  d.WorkspaceID,
		Name:         d.Name,
		CategoryType: string(d.Type),
		Icon:         d.Icon,
		ColorHex:     d.ColorHex,
		IsDefault:    d.IsDefault,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		WorkspaceID: m.WorkspaceID,
		Name:        m.Name,
		Type:        domain.TransactionType(m.CategoryType),
		Icon:        m.Icon,
		ColorHex:    m.ColorHex,
		IsDefault:   m.IsDefault,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
