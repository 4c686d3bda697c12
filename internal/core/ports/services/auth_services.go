package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
)

// TokenSvc issues session tokens.
type TokenSvc interface {
	IssueToken(ctx context.Context, user *domain.User) (utils.SessionToken, error)
}

// CredentialsAuthSvc signs users in with email and password.
type CredentialsAuthSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, utils.SessionToken, error)
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, utils.SessionToken, error)
}

// GoogleAuthSvc runs the Google OAuth2 authorization-code flow.
type GoogleAuthSvc interface {
	// GoogleEnabled reports whether Google sign-in is configured.
	GoogleEnabled() bool

	// GoogleLoginURL returns the consent URL and the state value the callback must echo.
	GoogleLoginURL(ctx context.Context) (url string, state string, err error)

	// GoogleCallback exchanges the authorization code, verifies the ID token
	// and signs the user in.
	GoogleCallback(ctx context.Context, code string) (*domain.User, utils.SessionToken, error)
}

// AuthSvcFacade combines all authentication service interfaces
type AuthSvcFacade interface {
	TokenSvc
	CredentialsAuthSvc
	GoogleAuthSvc
}
