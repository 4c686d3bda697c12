package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_finance_app/internal/models"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/SscSPs/workspace_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionPageSize = 50
	maxTransactionPageSize     = 200
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxTransactionRepository creates a transaction repository that keeps
// account balances in step through accountRepo.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, workspace_id, account_id, credit_card_id, category_id,
	transaction_type, amount, transaction_date, status, description,
	created_at, created_by, last_updated_at, last_updated_by
`

const transactionSelectQuery = `SELECT` + transactionColumns + `FROM transactions `

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}

// lockTransaction reads a transaction row FOR UPDATE inside tx.
func lockTransaction(ctx context.Context, tx pgx.Tx, workspaceID, transactionID string) (domain.Transaction, error) {
	rows, err := tx.Query(ctx,
		transactionSelectQuery+`WHERE workspace_id = $1 AND transaction_id = $2 FOR UPDATE`,
		workspaceID, transactionID,
	)
	if err != nil {
		return domain.Transaction{}, apperrors.NewAppError(500, "failed to lock transaction", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, apperrors.NewNotFoundError("transaction not found")
		}
		return domain.Transaction{}, apperrors.NewAppError(500, "failed to read locked transaction", err)
	}
	return mapping.ToDomainTransaction(m), nil
}

func (r *PgxTransactionRepository) adjustLinkedAccount(ctx context.Context, tx pgx.Tx, txn domain.Transaction, delta decimal.Decimal, userID string, now time.Time) error {
	if delta.IsZero() || !txn.AffectsAccount() {
		return nil
	}
	return r.accountRepo.AdjustBalanceInTx(ctx, tx, txn.WorkspaceID, *txn.AccountID, delta, userID, now)
}

// CreateTransaction inserts the row and applies its creation delta to the
// linked account in the same transaction.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO transactions (`+transactionColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
			m.TransactionID, m.WorkspaceID, m.AccountID, m.CreditCardID, m.CategoryID,
			m.TransactionType, m.Amount, m.TransactionDate, m.Status, m.Description,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, "transaction", "save")
		}
		return r.adjustLinkedAccount(ctx, tx, txn, accounting.CreationDelta(txn), txn.CreatedBy, txn.CreatedAt)
	})
}

// ChangeTransaction applies a status and/or description patch. The row is
// locked first so two concurrent transitions of the same transaction are
// serialized and each sees the other's status.
func (r *PgxTransactionRepository) ChangeTransaction(ctx context.Context, workspaceID, transactionID string, change domain.TransactionChange, userID string, now time.Time) (*domain.Transaction, error) {
	var updated domain.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		current, err := lockTransaction(ctx, tx, workspaceID, transactionID)
		if err != nil {
			return err
		}

		updated = current
		delta := decimal.Zero
		if change.Status != nil {
			delta, err = accounting.StatusTransitionDelta(current, *change.Status)
			if err != nil {
				return err
			}
			updated.Status = *change.Status
		}
		if change.Description != nil {
			updated.Description = *change.Description
		}
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID

		if _, err := tx.Exec(ctx, `
			UPDATE transactions
			SET status = $3, description = $4, last_updated_at = $5, last_updated_by = $6
			WHERE workspace_id = $1 AND transaction_id = $2;`,
			workspaceID, transactionID, string(updated.Status), updated.Description, now, userID,
		); err != nil {
			return translateWriteError(err, "transaction", "update")
		}

		return r.adjustLinkedAccount(ctx, tx, current, delta, userID, now)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes the row and reverses any balance effect it had.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, workspaceID, transactionID, userID string, now time.Time) (*domain.Transaction, error) {
	var deleted domain.Transaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		current, err := lockTransaction(ctx, tx, workspaceID, transactionID)
		if err != nil {
			return err
		}
		deleted = current

		if _, err := tx.Exec(ctx,
			`DELETE FROM transactions WHERE workspace_id = $1 AND transaction_id = $2;`,
			workspaceID, transactionID,
		); err != nil {
			return apperrors.NewAppError(500, "failed to delete transaction", err)
		}

		return r.adjustLinkedAccount(ctx, tx, current, accounting.DeletionDelta(current), userID, now)
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, workspaceID, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		transactionSelectQuery+`WHERE workspace_id = $1 AND transaction_id = $2`,
		workspaceID, transactionID,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction", err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return &txns[0], nil
}

// ListTransactions returns one page ordered newest first. Rows are fetched
// one past the page size to know whether another page exists.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, workspaceID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	where, args := buildTransactionFilter(workspaceID, filter)
	args = append(args, limit+1)
	query := fmt.Sprintf(
		"%sWHERE %s ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT $%d",
		transactionSelectQuery, strings.Join(where, " AND "), len(args),
	)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}

	page := &domain.TransactionPage{Transactions: txns}
	if len(txns) > limit {
		page.Transactions = txns[:limit]
		last := page.Transactions[limit-1]
		page.Next = &domain.TransactionCursor{
			Date:          last.Date,
			CreatedAt:     last.CreatedAt,
			TransactionID: last.TransactionID,
		}
	}
	return page, nil
}

// buildTransactionFilter renders the WHERE predicates of a listing.
// The workspace predicate is always first.
func buildTransactionFilter(workspaceID string, filter domain.TransactionFilter) ([]string, []any) {
	where := []string{"workspace_id = $1"}
	args := []any{workspaceID}
	add := func(predicate string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(predicate, len(args)))
	}

	if filter.From != nil {
		add("transaction_date >= $%d", mapping.ToModelDate(*filter.From))
	}
	if filter.To != nil {
		add("transaction_date <= $%d", mapping.ToModelDate(*filter.To))
	}
	if filter.Type != nil {
		add("transaction_type = $%d", string(*filter.Type))
	}
	if filter.Status != nil {
		add("status = $%d", string(*filter.Status))
	}
	if filter.AccountID != nil {
		add("account_id = $%d", *filter.AccountID)
	}
	if filter.CreditCardID != nil {
		add("credit_card_id = $%d", *filter.CreditCardID)
	}
	if filter.CategoryID != nil {
		add("category_id = $%d", *filter.CategoryID)
	}
	if c := filter.After; c != nil {
		args = append(args, mapping.ToModelDate(c.Date), c.CreatedAt, c.TransactionID)
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(transaction_date, created_at, transaction_id) < ($%d, $%d, $%d)", n-2, n-1, n))
	}
	return where, args
}
