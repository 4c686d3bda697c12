package dto

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCreditCardRequest defines the data needed to register a credit card.
type CreateCreditCardRequest struct {
	Name       string          `json:"name" binding:"required,max=100"`
	ClosingDay int             `json:"closingDay" binding:"required,min=1,max=31"`
	Limit      decimal.Decimal `json:"limit" swaggertype:"string"`
	AccountID  *string         `json:"accountID" binding:"omitempty,uuid"`
	Color      string          `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCreditCardRequest defines the data allowed for updating a credit card.
// ClearAccount unlinks the paying account.
type UpdateCreditCardRequest struct {
	Name         *string             `json:"name" binding:"omitempty,min=1,max=100"`
	ClosingDay   *int                `json:"closingDay" binding:"omitempty,min=1,max=31"`
	Limit        decimal.NullDecimal `json:"limit" swaggertype:"string"`
	AccountID    *string             `json:"accountID" binding:"omitempty,uuid"`
	ClearAccount bool                `json:"clearAccount"`
	Color        *string             `json:"color" binding:"omitempty,hexcolor"`
}

// InvoiceResponse is the current billing cycle of a card and its usage.
type InvoiceResponse struct {
	CycleStart     civil.Date      `json:"cycleStart" swaggertype:"string" example:"2024-02-16"`
	CycleEnd       civil.Date      `json:"cycleEnd" swaggertype:"string" example:"2024-03-15"`
	DueDate        civil.Date      `json:"dueDate" swaggertype:"string" example:"2024-03-25"`
	CurrentInvoice decimal.Decimal `json:"currentInvoice" swaggertype:"string"`
	UsagePercent   int64           `json:"usagePercent"`
	Available      decimal.Decimal `json:"available" swaggertype:"string"`
}

// CreditCardResponse defines the data returned for a credit card, with its invoice.
type CreditCardResponse struct {
	CreditCardID  string          `json:"creditCardID"`
	Name          string          `json:"name"`
	ClosingDay    int             `json:"closingDay"`
	Limit         decimal.Decimal `json:"limit" swaggertype:"string"`
	AccountID     *string         `json:"accountID,omitempty"`
	Color         string          `json:"color"`
	Invoice       InvoiceResponse `json:"invoice"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a computed domain.InvoiceSummary to its DTO.
func ToInvoiceResponse(inv domain.InvoiceSummary) InvoiceResponse {
	return InvoiceResponse{
		CycleStart:     inv.Start,
		CycleEnd:       inv.End,
		DueDate:        inv.DueDate,
		CurrentInvoice: inv.CurrentInvoice,
		UsagePercent:   inv.UsagePercent,
		Available:      inv.Available,
	}
}

// ToCreditCardResponse converts a card and its invoice to CreditCardResponse DTO.
func ToCreditCardResponse(card *domain.CreditCardWithInvoice) CreditCardResponse {
	return CreditCardResponse{
		CreditCardID:  card.CreditCardID,
		Name:          card.Name,
		ClosingDay:    card.ClosingDay,
		Limit:         card.Limit,
		AccountID:     card.AccountID,
		Color:         card.Color,
		Invoice:       ToInvoiceResponse(card.Invoice),
		CreatedAt:     card.CreatedAt,
		LastUpdatedAt: card.LastUpdatedAt,
	}
}

// ToListCreditCardResponse converts cards with invoices to their DTOs.
func ToListCreditCardResponse(cards []domain.CreditCardWithInvoice) []CreditCardResponse {
	res := make([]CreditCardResponse, len(cards))
	for i := range cards {
		res[i] = ToCreditCardResponse(&cards[i])
	}
	return res
}
