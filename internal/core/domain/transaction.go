package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of money movement.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionStatus is the settlement state; only paid transactions count
// toward an account balance.
type TransactionStatus string

const (
	StatusPaid    TransactionStatus = "paid"
	StatusPending TransactionStatus = "pending"
)

// Transaction is a single income or expense. It is linked to an account, a
// credit card, or (after its account was removed) to neither.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	WorkspaceID   string            `json:"workspaceID"`
	AccountID     *string           `json:"accountID,omitempty"`
	CreditCardID  *string           `json:"creditCardID,omitempty"`
	CategoryID    *string           `json:"categoryID,omitempty"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"` // Non-negative magnitude; sign comes from Type
	Date          civil.Date        `json:"date"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description"`
	AuditFields
}

// AffectsAccount reports whether the transaction is linked to an account and
// can therefore move its cached balance.
func (t Transaction) AffectsAccount() bool {
	return t.AccountID != nil && *t.AccountID != ""
}

// IsPaid reports whether the transaction is settled.
func (t Transaction) IsPaid() bool {
	return t.Status == StatusPaid
}
