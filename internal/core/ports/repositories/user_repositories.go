package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by an external identity.
	FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateProfile updates name, email and phone.
	UpdateProfile(ctx context.Context, user domain.User) error

	// UpdateAvatar replaces the stored avatar data URI.
	UpdateAvatar(ctx context.Context, userID, avatarURL string, now time.Time) error

	// LinkProvider attaches an external identity to an existing user.
	LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
