package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_finance_app/internal/models"
	"github.com/SscSPs/workspace_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryWithTx {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

const accountSelectQuery = `
SELECT
	account_id, workspace_id, name, account_type, balance, color,
	created_at, created_by, last_updated_at, last_updated_by
FROM accounts
`

func (r *PgxAccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect account rows", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO accounts (
			account_id, workspace_id, name, account_type, balance, color,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.AccountID, m.WorkspaceID, m.Name, m.AccountType, m.Balance, m.Color,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "account", "save")
	}
	return nil
}

// FindAccountByID retrieves an account by its ID within a workspace.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, `WHERE workspace_id = $1 AND account_id = $2`, workspaceID, accountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account not found")
	}
	return &accounts[0], nil
}

// ListAccounts retrieves the accounts of a workspace ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, workspaceID string) ([]domain.Account, error) {
	return r.getAccounts(ctx, `WHERE workspace_id = $1 ORDER BY name, account_id`, workspaceID)
}

// UpdateAccount updates the descriptive fields of an account. The cached
// balance only moves through SetBalance and AdjustBalanceInTx.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE accounts
		SET name = $3, account_type = $4, color = $5, last_updated_at = $6, last_updated_by = $7
		WHERE workspace_id = $1 AND account_id = $2;`,
		m.WorkspaceID, m.AccountID, m.Name, m.AccountType, m.Color, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "account", "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}

// DeleteAccount removes the account. The foreign keys from transactions,
// credit_cards and goals are ON DELETE SET NULL, so linked rows survive.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, workspaceID, accountID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM accounts WHERE workspace_id = $1 AND account_id = $2;`,
		workspaceID, accountID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete account", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}

const accountSetBalanceQuery = `
	UPDATE accounts
	SET balance = $3, last_updated_at = $4, last_updated_by = $5
	WHERE workspace_id = $1 AND account_id = $2;`

// SetBalance overwrites the cached balance with an absolute value under a
// row lock and returns the balance it replaced.
func (r *PgxAccountRepository) SetBalance(ctx context.Context, workspaceID, accountID string, balance decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	var previous decimal.Decimal
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT balance FROM accounts WHERE workspace_id = $1 AND account_id = $2 FOR UPDATE;`,
			workspaceID, accountID,
		).Scan(&previous)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("account not found")
			}
			return apperrors.NewAppError(500, "failed to lock account", err)
		}
		if _, err := tx.Exec(ctx, accountSetBalanceQuery, workspaceID, accountID, balance, now, userID); err != nil {
			return apperrors.NewAppError(500, "failed to set account balance", err)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return previous, nil
}

// AdjustBalanceInTx increments the cached balance inside tx. The increment is
// done by the database so concurrent adjustments never lose an update.
func (r *PgxAccountRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, workspaceID, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	if delta.IsZero() {
		return nil
	}
	cmdTag, err := tx.Exec(ctx, `
		UPDATE accounts
		SET balance = balance + $3, last_updated_at = $4, last_updated_by = $5
		WHERE workspace_id = $1 AND account_id = $2;`,
		workspaceID, accountID, delta, now, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust account balance", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}
