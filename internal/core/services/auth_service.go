package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/platform/config"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const oauthStateBytes = 24

// GoogleIdentityProvider is the outbound side of Google sign-in.
type GoogleIdentityProvider interface {
	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string

	// Identify exchanges an authorization code and returns the verified identity.
	Identify(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}

type authService struct {
	BaseService
	cfg    *config.Config
	users  portssvc.UserSvcFacade
	google GoogleIdentityProvider
}

// NewAuthService creates the authentication service. A nil google provider
// disables Google sign-in.
func NewAuthService(cfg *config.Config, users portssvc.UserSvcFacade, google GoogleIdentityProvider, opts ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: newBaseService(opts),
		cfg:         cfg,
		users:       users,
		google:      google,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) IssueToken(ctx context.Context, user *domain.User) (utils.SessionToken, error) {
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to issue session token", slog.String("user_id", user.UserID))
		return utils.SessionToken{}, err
	}
	return token, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, utils.SessionToken, error) {
	user, err := s.users.Register(ctx, req)
	if err != nil {
		return nil, utils.SessionToken{}, err
	}
	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, utils.SessionToken{}, err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, utils.SessionToken, error) {
	user, err := s.users.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, utils.SessionToken{}, err
	}
	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, utils.SessionToken{}, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *authService) GoogleEnabled() bool {
	return s.google != nil
}

func (s *authService) GoogleLoginURL(ctx context.Context) (string, string, error) {
	if !s.GoogleEnabled() {
		return "", "", apperrors.NewNotFoundError("google sign-in is not configured")
	}
	state, err := utils.GenerateOAuthState(oauthStateBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate oauth state")
		return "", "", err
	}
	return s.google.AuthCodeURL(state), state, nil
}

func (s *authService) GoogleCallback(ctx context.Context, code string) (*domain.User, utils.SessionToken, error) {
	if !s.GoogleEnabled() {
		return nil, utils.SessionToken{}, apperrors.NewNotFoundError("google sign-in is not configured")
	}
	if code == "" {
		return nil, utils.SessionToken{}, apperrors.NewValidationFailedError("authorization code is required")
	}

	info, err := s.google.Identify(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google identity verification failed")
		return nil, utils.SessionToken{}, apperrors.NewUnauthorizedError("google sign-in failed")
	}
	user, err := s.users.FindOrCreateGoogleUser(ctx, *info)
	if err != nil {
		return nil, utils.SessionToken{}, err
	}
	token, err := s.IssueToken(ctx, user)
	if err != nil {
		return nil, utils.SessionToken{}, err
	}
	return user, token, nil
}

// googleOAuthProvider implements GoogleIdentityProvider with the
// authorization-code flow and ID-token verification.
type googleOAuthProvider struct {
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthProvider returns nil when Google sign-in is not configured.
func NewGoogleOAuthProvider(cfg *config.Config) GoogleIdentityProvider {
	if !cfg.GoogleOAuthEnabled() {
		return nil
	}
	return &googleOAuthProvider{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleOAuthProvider) AuthCodeURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *googleOAuthProvider) Identify(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response has no id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, p.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return googleUserInfoFromClaims(payload.Subject, payload.Claims), nil
}

func googleUserInfoFromClaims(subject string, claims map[string]any) *domain.GoogleUserInfo {
	info := &domain.GoogleUserInfo{Subject: subject}
	info.Email, _ = claims["email"].(string)
	info.Name, _ = claims["name"].(string)
	info.Picture, _ = claims["picture"].(string)
	switch v := claims["email_verified"].(type) {
	case bool:
		info.EmailVerified = v
	case string:
		info.EmailVerified = v == "true"
	}
	return info
}
