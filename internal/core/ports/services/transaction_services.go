package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, scope domain.WorkspaceScope, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page, newest first.
	ListTransactions(ctx context.Context, scope domain.WorkspaceScope, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// TransactionWriterSvc defines write operations for transaction data.
// Every write keeps the cached balance of the linked account in step.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, scope domain.WorkspaceScope, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, scope domain.WorkspaceScope, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
