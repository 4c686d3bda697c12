package dto

import (
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// InitialBalance defaults to zero.
type CreateAccountRequest struct {
	Name           string              `json:"name" binding:"required,max=100"`
	AccountType    domain.AccountType  `json:"accountType" binding:"required,oneof=checking savings cash investment"`
	InitialBalance decimal.NullDecimal `json:"initialBalance" swaggertype:"string"`
	Color          string              `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// A balance sent here is a manual correction and replaces the cached value.
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=100"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=checking savings cash investment"`
	Color       *string             `json:"color" binding:"omitempty,hexcolor"`
	Balance     decimal.NullDecimal `json:"balance" swaggertype:"string"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	Balance       decimal.Decimal    `json:"balance" swaggertype:"string"`
	Color         string             `json:"color"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		Color:         acc.Color,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
