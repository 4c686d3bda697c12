package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/workspace_finance_app/internal/models"
	"github.com/SscSPs/workspace_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelectQuery = `
SELECT
	category_id, workspace_id, name, category_type, icon, color_hex, is_default,
	created_at, created_by, last_updated_at, last_updated_by
FROM categories
`

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, categorySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return mapping.ToDomainCategorySlice(categories), nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, insertCategoryQuery,
		m.CategoryID, m.WorkspaceID, m.Name, m.CategoryType, m.Icon, m.ColorHex, m.IsDefault,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "category", "save")
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, `WHERE workspace_id = $1 AND category_id = $2`, workspaceID, categoryID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, workspaceID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	if categoryType != nil {
		return r.getCategories(ctx,
			`WHERE workspace_id = $1 AND category_type = $2 ORDER BY is_default DESC, name`,
			workspaceID, string(*categoryType))
	}
	return r.getCategories(ctx, `WHERE workspace_id = $1 ORDER BY category_type, is_default DESC, name`, workspaceID)
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE categories
		SET name = $3, icon = $4, color_hex = $5, last_updated_at = $6, last_updated_by = $7
		WHERE workspace_id = $1 AND category_id = $2;`,
		m.WorkspaceID, m.CategoryID, m.Name, m.Icon, m.ColorHex, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "category", "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

// DeleteCategoryAndDetach unlinks the category's transactions and deletes it.
// Both statements share one transaction; the delete is guarded on is_default
// so a default category is never removed even if the caller skipped the check.
func (r *PgxCategoryRepository) DeleteCategoryAndDetach(ctx context.Context, workspaceID, categoryID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var isDefault bool
		err := tx.QueryRow(ctx,
			`SELECT is_default FROM categories WHERE workspace_id = $1 AND category_id = $2 FOR UPDATE;`,
			workspaceID, categoryID,
		).Scan(&isDefault)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("category not found")
			}
			return apperrors.NewAppError(500, "failed to lock category", err)
		}
		if isDefault {
			return apperrors.NewValidationFailedError("default categories cannot be deleted")
		}

		if _, err := tx.Exec(ctx,
			`UPDATE transactions SET category_id = NULL WHERE workspace_id = $1 AND category_id = $2;`,
			workspaceID, categoryID,
		); err != nil {
			return apperrors.NewAppError(500, "failed to detach category transactions", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM categories WHERE workspace_id = $1 AND category_id = $2 AND is_default = FALSE;`,
			workspaceID, categoryID,
		); err != nil {
			return apperrors.NewAppError(500, "failed to delete category", err)
		}
		return nil
	})
}
