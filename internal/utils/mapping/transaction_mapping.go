package mapping

import (
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		WorkspaceID:     d.WorkspaceID,
		AccountID:       d.AccountID,
		CreditCardID:    d.CreditCardID,
		CategoryID:      d.CategoryID,
		TransactionType: string(d.Type),
		Amount:          d.Amount,
		TransactionDate: ToModelDate(d.Date),
		Status:          string(d.Status),
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		WorkspaceID:   m.WorkspaceID,
		AccountID:     m.AccountID,
		CreditCardID:  m.CreditCardID,
		CategoryID:    m.CategoryID,
		Type:          domain.TransactionType(m.TransactionType),
		Amount:        m.Amount,
		Date:          ToDomainDate(m.TransactionDate),
		Status:        domain.TransactionStatus(m.Status),
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
