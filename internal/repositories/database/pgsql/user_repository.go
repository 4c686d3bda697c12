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
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT
	user_id, name, email, password_hash, phone, avatar_url, auth_provider, provider_user_id,
	created_at, last_updated_at
FROM users
`

func (r *PgxUserRepository) getUser(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, userSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query user", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(500, "failed to collect user row", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (
			user_id, name, email, password_hash, phone, avatar_url, auth_provider, provider_user_id,
			created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.Phone, m.AvatarURL, m.AuthProvider, m.ProviderUserID,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("a user with this email already exists")
		}
		return translateWriteError(err, "user", "save")
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE lower(email) = lower($1)`, email)
}

func (r *PgxUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.getUser(ctx, `WHERE auth_provider = $1 AND provider_user_id = $2`, string(provider), providerUserID)
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE users SET name = $2, email = $3, phone = $4, last_updated_at = $5
		WHERE user_id = $1;`,
		user.UserID, user.Name, user.Email, user.Phone, user.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("a user with this email already exists")
		}
		return translateWriteError(err, "user", "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *PgxUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET avatar_url = $2, last_updated_at = $3 WHERE user_id = $1;`,
		userID, avatarURL, now,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update avatar", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *PgxUserRepository) LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE users SET auth_provider = $2, provider_user_id = $3, last_updated_at = $4 WHERE user_id = $1;`,
		userID, string(provider), providerUserID, now,
	)
	if err != nil {
		return translateWriteError(err, "user", "link")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}
