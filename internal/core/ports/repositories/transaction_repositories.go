package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction inside a workspace.
	FindTransactionByID(ctx context.Context, workspaceID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns one page ordered by date, newest first.
	ListTransactions(ctx context.Context, workspaceID string, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

// TransactionWriter defines the balance-reconciling writes. Each method runs
// the row write and the account balance increment in one database transaction.
type TransactionWriter interface {
	// CreateTransaction inserts txn and applies its creation delta.
	CreateTransaction(ctx context.Context, txn domain.Transaction) error

	// ChangeTransaction locks the row, applies the status transition delta and
	// writes the patch. It returns the updated transaction.
	ChangeTransaction(ctx context.Context, workspaceID, transactionID string, change domain.TransactionChange, userID string, now time.Time) (*domain.Transaction, error)

	// DeleteTransaction locks the row, reverses its balance effect and deletes it.
	// It returns the deleted transaction.
	DeleteTransaction(ctx context.Context, workspaceID, transactionID, userID string, now time.Time) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
