package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
// TransactionDate is a DATE column; only its calendar day is meaningful.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	WorkspaceID     string          `db:"workspace_id"`
	AccountID       *string         `db:"account_id"`
	CreditCardID    *string         `db:"credit_card_id"`
	CategoryID      *string         `db:"category_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Status          string          `db:"status"`
	Description     string          `db:"description"`
	AuditFields
}
