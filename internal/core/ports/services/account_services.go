package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, scope domain.WorkspaceScope, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, scope domain.WorkspaceScope) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount edits an account. A balance in the request replaces the
	// cached balance as a manual correction.
	UpdateAccount(ctx context.Context, scope domain.WorkspaceScope, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes the account; linked transactions, cards and goals
	// are kept with their account link cleared.
	DeleteAccount(ctx context.Context, scope domain.WorkspaceScope, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
