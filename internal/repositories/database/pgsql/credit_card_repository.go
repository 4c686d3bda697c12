package pgsql

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_finance_app/internal/models"
	"github.com/SscSPs/workspace_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCreditCardRepository struct {
	BaseRepository
}

func newPgxCreditCardRepository(pool *pgxpool.Pool) portsrepo.CreditCardRepositoryFacade {
	return &PgxCreditCardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CreditCardRepositoryFacade = (*PgxCreditCardRepository)(nil)

const creditCardSelectQuery = `
SELECT
	credit_card_id, workspace_id, account_id, name, closing_day, credit_limit, color,
	created_at, created_by, last_updated_at, last_updated_by
FROM credit_cards
`

func (r *PgxCreditCardRepository) getCreditCards(ctx context.Context, filterQuery string, args ...any) ([]domain.CreditCard, error) {
	rows, err := r.Pool.Query(ctx, creditCardSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query credit cards", err)
	}
	cards, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CreditCard])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect credit card rows", err)
	}
	return mapping.ToDomainCreditCardSlice(cards), nil
}

func (r *PgxCreditCardRepository) SaveCreditCard(ctx context.Context, card domain.CreditCard) error {
	m := mapping.ToModelCreditCard(card)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO credit_cards (
			credit_card_id, workspace_id, account_id, name, closing_day, credit_limit, color,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.CreditCardID, m.WorkspaceID, m.AccountID, m.Name, m.ClosingDay, m.CreditLimit, m.Color,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "credit card", "save")
	}
	return nil
}

func (r *PgxCreditCardRepository) FindCreditCardByID(ctx context.Context, workspaceID, creditCardID string) (*domain.CreditCard, error) {
	cards, err := r.getCreditCards(ctx, `WHERE workspace_id = $1 AND credit_card_id = $2`, workspaceID, creditCardID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, apperrors.NewNotFoundError("credit card not found")
	}
	return &cards[0], nil
}

func (r *PgxCreditCardRepository) ListCreditCards(ctx context.Context, workspaceID string) ([]domain.CreditCard, error) {
	return r.getCreditCards(ctx, `WHERE workspace_id = $1 ORDER BY name, credit_card_id`, workspaceID)
}

func (r *PgxCreditCardRepository) UpdateCreditCard(ctx context.Context, card domain.CreditCard) error {
	m := mapping.ToModelCreditCard(card)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE credit_cards
		SET account_id = $3, name = $4, closing_day = $5, credit_limit = $6, color = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE workspace_id = $1 AND credit_card_id = $2;`,
		m.WorkspaceID, m.CreditCardID, m.AccountID, m.Name, m.ClosingDay, m.CreditLimit, m.Color,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "credit card", "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("credit card not found")
	}
	return nil
}

func (r *PgxCreditCardRepository) DeleteCreditCard(ctx context.Context, workspaceID, creditCardID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM credit_cards WHERE workspace_id = $1 AND credit_card_id = $2;`,
		workspaceID, creditCardID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete credit card", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("credit card not found")
	}
	return nil
}
