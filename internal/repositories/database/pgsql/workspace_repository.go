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

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceSelectQuery = `
SELECT
	w.workspace_id, w.name, w.profile_type, w.icon_emoji,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workspaces w
`

const memberSelectQuery = `
SELECT
	wu.user_id, wu.workspace_id, wu.role, wu.joined_at,
	u.name AS user_name, u.email AS user_email
FROM workspace_users wu
JOIN users u ON u.user_id = wu.user_id
`

const insertCategoryQuery = `
INSERT INTO categories (
	category_id, workspace_id, name, category_type, icon, color_hex, is_default,
	created_at, created_by, last_updated_at, last_updated_by
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func (r *PgxWorkspaceRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.WorkspaceUser, error) {
	rows, err := r.Pool.Query(ctx, memberSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspace members", err)
	}
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkspaceMember])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workspace member rows", err)
	}
	return mapping.ToDomainWorkspaceUserSlice(members), nil
}

// CreateWorkspaceWithDefaults writes the workspace, its owner and its seeded
// categories atomically. A failure on any row leaves no workspace behind.
func (r *PgxWorkspaceRepository) CreateWorkspaceWithDefaults(ctx context.Context, workspace domain.Workspace, owner domain.WorkspaceUser, categories []domain.Category) error {
	m := mapping.ToModelWorkspace(workspace)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO workspaces (
				workspace_id, name, profile_type, icon_emoji,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			m.WorkspaceID, m.Name, m.ProfileType, m.IconEmoji,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return translateWriteError(err, "workspace", "create")
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO workspace_users (user_id, workspace_id, role, joined_at)
			VALUES ($1, $2, $3, $4);`,
			owner.UserID, m.WorkspaceID, owner.Role, owner.JoinedAt,
		)
		if err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return apperrors.NewConflictError("user already belongs to a workspace")
			}
			return translateWriteError(err, "workspace membership", "create")
		}

		batch := &pgx.Batch{}
		for _, c := range categories {
			cm := mapping.ToModelCategory(c)
			batch.Queue(insertCategoryQuery,
				cm.CategoryID, m.WorkspaceID, cm.Name, cm.CategoryType, cm.Icon, cm.ColorHex, cm.IsDefault,
				cm.CreatedAt, cm.CreatedBy, cm.LastUpdatedAt, cm.LastUpdatedBy,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateWriteError(err, "default category", "seed")
		}
		return nil
	})
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	rows, err := r.Pool.Query(ctx, workspaceSelectQuery+`WHERE w.workspace_id = $1`, workspaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspace", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Workspace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("workspace not found")
		}
		return nil, apperrors.NewAppError(500, "failed to collect workspace row", err)
	}
	workspace := mapping.ToDomainWorkspace(m)
	return &workspace, nil
}

// FindMembershipByUserID returns the earliest membership of the user.
func (r *PgxWorkspaceRepository) FindMembershipByUserID(ctx context.Context, userID string) (*domain.WorkspaceUser, error) {
	members, err := r.getMembers(ctx, `WHERE wu.user_id = $1 ORDER BY wu.joined_at LIMIT 1`, userID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.NewNotFoundError("workspace not found")
	}
	return &members[0], nil
}

func (r *PgxWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceUser, error) {
	return r.getMembers(ctx, `WHERE wu.workspace_id = $1 ORDER BY wu.joined_at, u.name`, workspaceID)
}

func (r *PgxWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := mapping.ToModelWorkspace(workspace)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE workspaces
		SET name = $2, profile_type = $3, icon_emoji = $4, last_updated_at = $5, last_updated_by = $6
		WHERE workspace_id = $1;`,
		m.WorkspaceID, m.Name, m.ProfileType, m.IconEmoji, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "workspace", "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace not found")
	}
	return nil
}

func (r *PgxWorkspaceRepository) AddMember(ctx context.Context, membership domain.WorkspaceUser) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO workspace_users (user_id, workspace_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		membership.UserID, membership.WorkspaceID, membership.Role, membership.JoinedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("user already belongs to a workspace")
		}
		return translateWriteError(err, "workspace member", "add")
	}
	return nil
}

func (r *PgxWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM workspace_users WHERE workspace_id = $1 AND user_id = $2;`,
		workspaceID, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove workspace member", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member not found")
	}
	return nil
}
