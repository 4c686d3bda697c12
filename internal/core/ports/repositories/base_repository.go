package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager lets a caller group several writes, such as a
// transaction row and the balance it moves, into one database transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on an already committed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
