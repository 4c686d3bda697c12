package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/google/uuid"
)

// DefaultAvatarMaxBytes caps the encoded length of an avatar data URI.
const DefaultAvatarMaxBytes = 600000

var avatarMediaTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

type userService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	avatarMaxBytes int
}

// NewUserService creates the user service. A non-positive avatarMaxBytes
// falls back to DefaultAvatarMaxBytes.
func NewUserService(repo portsrepo.UserRepositoryFacade, avatarMaxBytes int, opts ...ServiceOption) portssvc.UserSvcFacade {
	if avatarMaxBytes <= 0 {
		avatarMaxBytes = DefaultAvatarMaxBytes
	}
	return &userService{
		BaseService:    newBaseService(opts),
		userRepo:       repo,
		avatarMaxBytes: avatarMaxBytes,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)
	if len(req.Password) < utils.MinPasswordLength {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("password must be at least %d characters", utils.MinPasswordLength))
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Name:          name,
		Email:         email,
		PasswordHash:  &hash,
		Phone:         strings.TrimSpace(req.Phone),
		AuthProvider:  domain.ProviderLocal,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogFailure(ctx, err, "Failed to save user")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	invalid := apperrors.NewUnauthorizedError("invalid email or password")

	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login for unknown email")
			return nil, invalid
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Login with wrong password", slog.String("user_id", user.UserID))
		return nil, invalid
	}
	return user, nil
}

func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.Subject == "" || info.Email == "" {
		return nil, apperrors.NewUnauthorizedError("google identity is missing subject or email")
	}
	if !info.EmailVerified {
		return nil, apperrors.NewUnauthorizedError("google email address is not verified")
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, info.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up google user")
		return nil, err
	}

	now := s.Now()
	email := normalizeEmail(info.Email)
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.userRepo.LinkProvider(ctx, user.UserID, domain.ProviderGoogle, info.Subject, now); err != nil {
			s.LogFailure(ctx, err, "Failed to link google identity", slog.String("user_id", user.UserID))
			return nil, err
		}
		user.AuthProvider = domain.ProviderGoogle
		user.ProviderUserID = &info.Subject
		s.LogInfo(ctx, "Google identity linked to existing user", slog.String("user_id", user.UserID))
		return user, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, err
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = email
	}
	subject := info.Subject
	created := domain.User{
		UserID:         uuid.NewString(),
		Name:           name,
		Email:          email,
		AvatarURL:      info.Picture,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &subject,
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		s.LogFailure(ctx, err, "Failed to create google user")
		return nil, err
	}
	s.LogInfo(ctx, "User created from google sign-in", slog.String("user_id", created.UserID))
	return &created, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to load user profile", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Name, err = requireName("name", req.Name); err != nil {
		return nil, err
	}
	user.Phone = strings.TrimSpace(req.Phone)
	user.LastUpdatedAt = s.Now()

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		s.LogFailure(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, req dto.UpdateAvatarRequest) (*domain.User, error) {
	if err := validateAvatar(req.Avatar, s.avatarMaxBytes); err != nil {
		return nil, err
	}
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.userRepo.UpdateAvatar(ctx, userID, req.Avatar, now); err != nil {
		s.LogFailure(ctx, err, "Failed to update avatar", slog.String("user_id", userID))
		return nil, err
	}
	user.AvatarURL = req.Avatar
	user.LastUpdatedAt = now
	s.LogInfo(ctx, "Avatar updated", slog.String("user_id", userID), slog.Int("bytes", len(req.Avatar)))
	return user, nil
}

// validateAvatar accepts "data:<image type>;base64,<payload>" no longer than maxBytes.
func validateAvatar(avatar string, maxBytes int) error {
	if len(avatar) > maxBytes {
		return apperrors.NewValidationFailedError(fmt.Sprintf("avatar must be at most %d bytes encoded", maxBytes))
	}
	header, payload, found := strings.Cut(avatar, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return apperrors.NewValidationFailedError("avatar must be a base64 data URI")
	}
	mediaType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if !avatarMediaTypes[strings.ToLower(mediaType)] {
		return apperrors.NewValidationFailedError("avatar must be a png, jpeg, webp or gif image")
	}
	if payload == "" {
		return apperrors.NewValidationFailedError("avatar image is empty")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return apperrors.NewValidationFailedError("avatar is not valid base64")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
