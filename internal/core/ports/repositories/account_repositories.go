package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an account inside a workspace.
	FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of a workspace ordered by name.
	ListAccounts(ctx context.Context, workspaceID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates name, type and color. The balance is left alone.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Transactions, cards and goals that
	// referenced it keep existing with the link cleared.
	DeleteAccount(ctx context.Context, workspaceID, accountID string) error
}

// AccountTransactionSupport defines operations that support balance reconciliation
type AccountTransactionSupport interface {
	// SetBalance overwrites the balance under a row lock and returns the previous balance.
	SetBalance(ctx context.Context, workspaceID, accountID string, balance decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)

	// AdjustBalanceInTx applies balance = balance + delta within the given transaction.
	AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, workspaceID, accountID string, delta decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
