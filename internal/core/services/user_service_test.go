package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/core/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, 1024, services.WithClock(fixedClock))
}

func (suite *UserServiceTestSuite) TestRegister_HashesPasswordAndNormalizesEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ana@example.com" && u.PasswordHash != nil && *u.PasswordHash != "s3cret-pass" &&
			u.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: " Ana@Example.com ", Password: "s3cret-pass"})

	suite.Require().NoError(err)
	suite.True(utils.CheckPasswordHash("s3cret-pass", user.PasswordHash))
	suite.Equal(fixedNow, user.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret-pass"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_ShortPassword() {
	user, err := suite.service.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "short"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "ana@example.com", PasswordHash: &hash}
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").Return(stored, nil).Twice()

	user, err := suite.service.AuthenticateUser(ctx, "ana@example.com", "correct-horse")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	user, err = suite.service.AuthenticateUser(ctx, "ana@example.com", "wrong-horse")
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyAccount() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "g@example.com").
		Return(&domain.User{UserID: "u2", Email: "g@example.com", AuthProvider: domain.ProviderGoogle}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "g@example.com", "anything")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailLooksLikeWrongPassword() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	_, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Equal("invalid email or password", apperrors.PublicMessage(err, ""))
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksExistingEmail() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Subject: "g-123", Email: "Ana@example.com", EmailVerified: true, Name: "Ana"}
	suite.mockRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "g-123").Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").Return(&domain.User{UserID: "u1", Email: "ana@example.com", AuthProvider: domain.ProviderLocal}, nil).Once()
	suite.mockRepo.On("LinkProvider", ctx, "u1", domain.ProviderGoogle, "g-123", fixedNow).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesNewUser() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Subject: "g-456", Email: "new@example.com", EmailVerified: true, Picture: "https://example.com/p.png"}
	suite.mockRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "g-456").Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.NewNotFoundError("user not found")).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash == nil && u.ProviderUserID != nil && *u.ProviderUserID == "g-456"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Name)
	suite.Equal("https://example.com/p.png", user.AvatarURL)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_UnverifiedEmail() {
	user, err := suite.service.FindOrCreateGoogleUser(context.Background(), domain.GoogleUserInfo{Subject: "g-1", Email: "x@example.com"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByProviderDetails", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateAvatar() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1"}, nil).Once()
	suite.mockRepo.On("UpdateAvatar", ctx, "u1", tinyPNG, fixedNow).Return(nil).Once()

	user, err := suite.service.UpdateAvatar(ctx, "u1", dto.UpdateAvatarRequest{Avatar: tinyPNG})

	suite.Require().NoError(err)
	suite.Equal(tinyPNG, user.AvatarURL)
}

func (suite *UserServiceTestSuite) TestUpdateAvatar_Rejected() {
	cases := map[string]string{
		"too large":     "data:image/png;base64," + strings.Repeat("A", 2048),
		"not data uri":  "https://example.com/a.png",
		"svg":           "data:image/svg+xml;base64,PHN2Zy8+",
		"bad base64":    "data:image/png;base64,@@@@",
		"empty payload": "data:image/png;base64,",
	}
	for name, avatar := range cases {
		suite.Run(name, func() {
			_, err := suite.service.UpdateAvatar(context.Background(), "u1", dto.UpdateAvatarRequest{Avatar: avatar})
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAvatar", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateProfile() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1", Name: "Old"}, nil).Once()
	suite.mockRepo.On("UpdateProfile", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "New Name" && u.Phone == "+55 11 99999-0000"
	})).Return(nil).Once()

	user, err := suite.service.UpdateProfile(ctx, "u1", dto.UpdateProfileRequest{Name: "New Name", Phone: " +55 11 99999-0000 "})

	suite.Require().NoError(err)
	suite.Equal("New Name", user.Name)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
