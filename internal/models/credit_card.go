package models

import "github.com/shopspring/decimal"

// CreditCard is the row shape of the credit_cards table.
type CreditCard struct {
	CreditCardID string          `db:"credit_card_id"`
	WorkspaceID  string          `db:"workspace_id"`
	AccountID    *string         `db:"account_id"`
	Name         string          `db:"name"`
	ClosingDay   int             `db:"closing_day"`
	CreditLimit  decimal.Decimal `db:"credit_limit"`
	Color        string          `db:"color"`
	AuditFields
}
