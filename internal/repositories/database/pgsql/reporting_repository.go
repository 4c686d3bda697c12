package pgsql

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository serves the dashboard's read-side queries.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// ListPaidTransactionsInRange returns the month's paid transactions in
// creation order, which the category ranking uses as its tie-break.
func (r *reportingRepository) ListPaidTransactionsInRange(ctx context.Context, workspaceID string, from, to civil.Date) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelectQuery+`
		WHERE workspace_id = $1 AND status = 'paid'
			AND transaction_date BETWEEN $2 AND $3
		ORDER BY created_at, transaction_id`,
		workspaceID, mapping.ToModelDate(from), mapping.ToModelDate(to),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query paid transactions", err)
	}
	return collectTransactions(rows)
}

func (r *reportingRepository) ListCardExpensesInRange(ctx context.Context, workspaceID string, creditCardIDs []string, from, to civil.Date) ([]domain.Transaction, error) {
	if len(creditCardIDs) == 0 {
		return []domain.Transaction{}, nil
	}
	rows, err := r.Pool.Query(ctx, transactionSelectQuery+`
		WHERE workspace_id = $1 AND credit_card_id = ANY($2)
			AND transaction_type = 'expense'
			AND transaction_date BETWEEN $3 AND $4
		ORDER BY transaction_date, created_at`,
		workspaceID, creditCardIDs, mapping.ToModelDate(from), mapping.ToModelDate(to),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query card expenses", err)
	}
	return collectTransactions(rows)
}

func (r *reportingRepository) SumAccountBalances(ctx context.Context, workspaceID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE workspace_id = $1`,
		workspaceID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum account balances", err)
	}
	return total, nil
}
