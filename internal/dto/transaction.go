package dto

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/SscSPs/workspace_finance_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Exactly one of AccountID and CreditCardID must be set. Status defaults to paid.
type CreateTransactionRequest struct {
	Type         domain.TransactionType   `json:"type" binding:"required,oneof=income expense"`
	Amount       decimal.Decimal          `json:"amount" swaggertype:"string"`
	Date         civil.Date               `json:"date" swaggertype:"string" example:"2024-03-15"`
	Status       domain.TransactionStatus `json:"status" binding:"omitempty,oneof=paid pending"`
	Description  string                   `json:"description" binding:"omitempty,max=255"`
	AccountID    *string                  `json:"accountID" binding:"omitempty,uuid"`
	CreditCardID *string                  `json:"creditCardID" binding:"omitempty,uuid"`
	CategoryID   *string                  `json:"categoryID" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest carries status and/or description. A status
// change moves the linked account balance.
type UpdateTransactionRequest struct {
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=paid pending"`
	Description *string                   `json:"description" binding:"omitempty,max=255"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Month        string `form:"month" binding:"omitempty,datetime=2006-01"`
	Type         string `form:"type" binding:"omitempty,oneof=income expense"`
	Status       string `form:"status" binding:"omitempty,oneof=paid pending"`
	AccountID    string `form:"accountID" binding:"omitempty,uuid"`
	CreditCardID string `form:"creditCardID" binding:"omitempty,uuid"`
	CategoryID   string `form:"categoryID" binding:"omitempty,uuid"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken    string `form:"nextToken"`
}

// ToFilter converts the query parameters into a repository filter.
// An undecodable nextToken is reported as an error.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{Limit: p.Limit}
	if p.Month != "" {
		month, err := accounting.ParseMonth(p.Month)
		if err != nil {
			return filter, err
		}
		start, end := accounting.MonthWindow(month)
		filter.From, filter.To = &start, &end
	}
	if p.Type != "" {
		t := domain.TransactionType(p.Type)
		filter.Type = &t
	}
	if p.Status != "" {
		s := domain.TransactionStatus(p.Status)
		filter.Status = &s
	}
	filter.AccountID = optionalString(p.AccountID)
	filter.CreditCardID = optionalString(p.CreditCardID)
	filter.CategoryID = optionalString(p.CategoryID)
	if p.NextToken != "" {
		cursor, err := pagination.DecodeTransactionCursor(p.NextToken)
		if err != nil {
			return filter, err
		}
		filter.After = cursor
	}
	return filter, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Type          domain.TransactionType   `json:"type"`
	Amount        decimal.Decimal          `json:"amount" swaggertype:"string"`
	Date          civil.Date               `json:"date" swaggertype:"string" example:"2024-03-15"`
	Status        domain.TransactionStatus `json:"status"`
	Description   string                   `json:"description"`
	AccountID     *string                  `json:"accountID,omitempty"`
	CreditCardID  *string                  `json:"creditCardID,omitempty"`
	CategoryID    *string                  `json:"categoryID,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Status:        txn.Status,
		Description:   txn.Description,
		AccountID:     txn.AccountID,
		CreditCardID:  txn.CreditCardID,
		CategoryID:    txn.CategoryID,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToListTransactionsResponse converts a page, encoding its continuation token.
func ToListTransactionsResponse(page *domain.TransactionPage) ListTransactionsResponse {
	res := ListTransactionsResponse{Transactions: ToTransactionResponses(page.Transactions)}
	if page.Next != nil {
		token := pagination.EncodeTransactionCursor(*page.Next)
		res.NextToken = &token
	}
	return res
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
