package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies where the money in an account lives.
type AccountType string

const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// Account represents a money-holding account within a workspace.
// Balance is a cached running total of the paid transactions linked to it,
// plus any manual edits.
type Account struct {
	AccountID   string          `json:"accountID"`
	WorkspaceID string          `json:"workspaceID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Color       string          `json:"color"`
	AuditFields
}
