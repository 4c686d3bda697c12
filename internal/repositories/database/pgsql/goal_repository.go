package pgsql

import (
	"context"
	"errors"
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

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalSelectQuery = `
SELECT
	goal_id, workspace_id, account_id, name, emoji, target_amount, current_amount, target_date, status,
	created_at, created_by, last_updated_at, last_updated_by
FROM goals
`

func collectGoals(rows pgx.Rows) ([]domain.Goal, error) {
	goals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect goal rows", err)
	}
	return mapping.ToDomainGoalSlice(goals), nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := mapping.ToModelGoal(goal)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO goals (
			goal_id, workspace_id, account_id, name, emoji, target_amount, current_amount, target_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.GoalID, m.WorkspaceID, m.AccountID, m.Name, m.Emoji, m.TargetAmount, m.CurrentAmount, m.TargetDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "goal", "save")
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, workspaceID, goalID string) (*domain.Goal, error) {
	rows, err := r.Pool.Query(ctx, goalSelectQuery+`WHERE workspace_id = $1 AND goal_id = $2`, workspaceID, goalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goal", err)
	}
	goals, err := collectGoals(rows)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, apperrors.NewNotFoundError("goal not found")
	}
	return &goals[0], nil
}

func (r *PgxGoalRepository) ListGoals(ctx context.Context, workspaceID string, status *domain.GoalStatus) ([]domain.Goal, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.Pool.Query(ctx,
			goalSelectQuery+`WHERE workspace_id = $1 AND status = $2 ORDER BY target_date NULLS LAST, name`,
			workspaceID, string(*status))
	} else {
		rows, err = r.Pool.Query(ctx,
			goalSelectQuery+`WHERE workspace_id = $1 ORDER BY target_date NULLS LAST, name`,
			workspaceID)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goals", err)
	}
	return collectGoals(rows)
}

// goalEditQuery leaves current_amount alone so an edit racing a deposit
// cannot write back a stale amount.
const goalEditQuery = `
	UPDATE goals
	SET account_id = $3, name = $4, emoji = $5, target_amount = $6,
		target_date = $7, status = $8, last_updated_at = $9, last_updated_by = $10
	WHERE workspace_id = $1 AND goal_id = $2;`

func lockGoal(ctx context.Context, tx pgx.Tx, workspaceID, goalID string) (domain.Goal, error) {
	rows, err := tx.Query(ctx, goalSelectQuery+`WHERE workspace_id = $1 AND goal_id = $2 FOR UPDATE`, workspaceID, goalID)
	if err != nil {
		return domain.Goal{}, apperrors.NewAppError(500, "failed to lock goal", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Goal{}, apperrors.NewNotFoundError("goal not found")
		}
		return domain.Goal{}, apperrors.NewAppError(500, "failed to read locked goal", err)
	}
	return mapping.ToDomainGoal(m), nil
}

// UpdateGoal edits the goal under a row lock, so the edit sees any deposit
// committed before it and deposits wait for it.
func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, workspaceID, goalID string, edit portsrepo.GoalEdit) (*domain.Goal, error) {
	var updated domain.Goal
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		goal, err := lockGoal(ctx, tx, workspaceID, goalID)
		if err != nil {
			return err
		}
		if err := edit(&goal); err != nil {
			return err
		}

		m := mapping.ToModelGoal(goal)
		_, err = tx.Exec(ctx, goalEditQuery,
			m.WorkspaceID, m.GoalID, m.AccountID, m.Name, m.Emoji, m.TargetAmount,
			m.TargetDate, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, "goal", "update")
		}
		updated = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, workspaceID, goalID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM goals WHERE workspace_id = $1 AND goal_id = $2;`, workspaceID, goalID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete goal", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal not found")
	}
	return nil
}

// ApplyDeposit serializes deposits on a goal with a row lock so two
// concurrent deposits both count and the cap at target still holds.
func (r *PgxGoalRepository) ApplyDeposit(ctx context.Context, workspaceID, goalID string, amount decimal.Decimal, userID string, now time.Time) (*domain.Goal, error) {
	var updated domain.Goal
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		goal, err := lockGoal(ctx, tx, workspaceID, goalID)
		if err != nil {
			return err
		}

		updated, err = accounting.ApplyGoalDeposit(goal, amount)
		if err != nil {
			return err
		}
		updated.LastUpdatedAt = now
		updated.LastUpdatedBy = userID

		_, err = tx.Exec(ctx, `
			UPDATE goals
			SET current_amount = $3, status = $4, last_updated_at = $5, last_updated_by = $6
			WHERE workspace_id = $1 AND goal_id = $2;`,
			workspaceID, goalID, updated.CurrentAmount, string(updated.Status), now, userID,
		)
		if err != nil {
			return translateWriteError(err, "goal", "update")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
