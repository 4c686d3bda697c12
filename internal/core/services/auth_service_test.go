package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/core/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/platform/config"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeGoogleProvider struct {
	info *domain.GoogleUserInfo
	err  error
}

func (f *fakeGoogleProvider) AuthCodeURL(state string) string {
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (f *fakeGoogleProvider) Identify(_ context.Context, _ string) (*domain.GoogleUserInfo, error) {
	return f.info, f.err
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	repo.On("FindUserByEmail", ctx, "ana@example.com").Return(&domain.User{UserID: "u1", PasswordHash: &hash}, nil).Once()

	cfg := testAuthConfig()
	auth := services.NewAuthService(cfg, services.NewUserService(repo, 0), nil)

	user, token, err := auth.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	claims, err := utils.ParseAndValidateJWT(token.Token, cfg.JWTSecret, cfg.JWTIssuer)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	repo.On("FindUserByEmail", ctx, "ana@example.com").Return(&domain.User{UserID: "u1", PasswordHash: &hash}, nil).Once()
	auth := services.NewAuthService(testAuthConfig(), services.NewUserService(repo, 0), nil)

	user, token, err := auth.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "nope"})

	assert.Nil(t, user)
	assert.Empty(t, token.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_GoogleDisabled(t *testing.T) {
	auth := services.NewAuthService(testAuthConfig(), services.NewUserService(new(MockUserRepository), 0), nil)

	assert.False(t, auth.GoogleEnabled())
	_, _, err := auth.GoogleLoginURL(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, _, err = auth.GoogleCallback(context.Background(), "code")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAuthService_GoogleLoginURLCarriesState(t *testing.T) {
	auth := services.NewAuthService(testAuthConfig(), services.NewUserService(new(MockUserRepository), 0), &fakeGoogleProvider{})

	url, state, err := auth.GoogleLoginURL(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, state)
	assert.Contains(t, url, "state="+state)
}

func TestAuthService_GoogleCallback(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	repo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "g-1").
		Return(&domain.User{UserID: "u9", AuthProvider: domain.ProviderGoogle}, nil).Once()
	provider := &fakeGoogleProvider{info: &domain.GoogleUserInfo{Subject: "g-1", Email: "g@example.com", EmailVerified: true}}
	auth := services.NewAuthService(testAuthConfig(), services.NewUserService(repo, 0), provider)

	user, token, err := auth.GoogleCallback(ctx, "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "u9", user.UserID)
	assert.NotEmpty(t, token.Token)
}

func TestAuthService_GoogleCallbackFailures(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	auth := services.NewAuthService(testAuthConfig(), services.NewUserService(repo, 0), &fakeGoogleProvider{err: assert.AnError})

	_, _, err := auth.GoogleCallback(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = auth.GoogleCallback(ctx, "auth-code")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	repo.AssertNotCalled(t, "FindUserByProviderDetails", mock.Anything, mock.Anything, mock.Anything)
}
