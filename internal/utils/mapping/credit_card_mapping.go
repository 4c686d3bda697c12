package mapping

import (
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/models"
)

func ToModelCreditCard(d domain.CreditCard) models.CreditCard {
	return models.CreditCard{
		CreditCardID: d.CreditCardID,
		WorkspaceID:  d.WorkspaceID,
		AccountID:    d.AccountID,
		Name:         d.Name,
		ClosingDay:   d.ClosingDay,
		CreditLimit:  d.Limit,
		Color:        d.Color,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCreditCard(m models.CreditCard) domain.CreditCard {
	return domain.CreditCard{
		CreditCardID: m.CreditCardID,
		WorkspaceID:  m.WorkspaceID,
		AccountID:    m.AccountID,
		Name:         m.Name,
		ClosingDay:   m.ClosingDay,
		Limit:        m.CreditLimit,
		Color:        m.Color,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainCreditCardSlice(ms []models.CreditCard) []domain.CreditCard {
	ds := make([]domain.CreditCard, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditCard(m)
	}
	return ds
}
