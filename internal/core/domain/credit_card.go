package domain

import "github.com/shopspring/decimal"

// CreditCard is a card whose invoice is always recomputed from its
// transactions; nothing about usage is stored.
type CreditCard struct {
	CreditCardID string          `json:"creditCardID"`
	WorkspaceID  string          `json:"workspaceID"`
	AccountID    *string         `json:"accountID,omitempty"` // Optional paying account
	Name         string          `json:"name"`
	ClosingDay   int             `json:"closingDay"` // 1-31
	Limit        decimal.Decimal `json:"limit"`
	Color        string          `json:"color"`
	AuditFields
}
