package repositories

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-side queries behind the dashboard
type ReportingRepository interface {
	// ListPaidTransactionsInRange returns paid transactions dated in [from, to].
	ListPaidTransactionsInRange(ctx context.Context, workspaceID string, from, to civil.Date) ([]domain.Transaction, error)

	// ListCardExpensesInRange returns expense transactions of the given cards
	// dated in [from, to], regardless of status.
	ListCardExpensesInRange(ctx context.Context, workspaceID string, creditCardIDs []string, from, to civil.Date) ([]domain.Transaction, error)

	// SumAccountBalances returns the total cached balance of a workspace.
	SumAccountBalances(ctx context.Context, workspaceID string) (decimal.Decimal, error)
}
