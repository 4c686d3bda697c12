package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/core/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, services.WithClock(fixedClock))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Checking",
		AccountType:    domain.AccountChecking,
		InitialBalance: decimal.NewNullDecimal(dec("150.25")),
	}
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, ownerScope(), req)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("ws-1", account.WorkspaceID)
	suite.True(dec("150.25").Equal(account.Balance))
	suite.Equal("#3B82F6", account.Color)
	suite.Equal("user-owner", account.CreatedBy)
	suite.Equal(fixedNow, account.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NoInitialBalanceStartsAtZero() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, memberScope(), dto.CreateAccountRequest{Name: "Wallet", AccountType: domain.AccountCash, Color: "#000000"})

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
	suite.Equal("#000000", account.Color)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	account, err := suite.service.CreateAccount(ctx, ownerScope(), dto.CreateAccountRequest{Name: "X", AccountType: domain.AccountCash})

	suite.Nil(account)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "ws-1", "missing").
		Return(nil, apperrors.NewNotFoundError("account not found")).Once()

	account, err := suite.service.GetAccountByID(ctx, ownerScope(), "missing")

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx, "ws-1").Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, ownerScope())

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ManualBalanceIsAbsolute() {
	ctx := context.Background()
	stored := &domain.Account{AccountID: "acc-1", WorkspaceID: "ws-1", Name: "Checking", AccountType: domain.AccountChecking, Balance: dec("100")}
	suite.mockRepo.On("FindAccountByID", ctx, "ws-1", "acc-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == "Main" && a.LastUpdatedBy == "user-member"
	})).Return(nil).Once()
	// A transaction moved the stored balance to 90 after the read above.
	suite.mockRepo.On("SetBalance", ctx, "ws-1", "acc-1",
		mock.MatchedBy(func(b decimal.Decimal) bool { return b.Equal(dec("74.50")) }),
		"user-member", fixedNow,
	).Return(dec("90"), nil).Once()

	account, err := suite.service.UpdateAccount(ctx, memberScope(), "acc-1", dto.UpdateAccountRequest{
		Name:    strPtr("Main"),
		Balance: decimal.NewNullDecimal(dec("74.50")),
	})

	suite.Require().NoError(err)
	suite.Equal("Main", account.Name)
	suite.True(dec("74.50").Equal(account.Balance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoBalanceLeavesBalanceAlone() {
	ctx := context.Background()
	stored := &domain.Account{AccountID: "acc-1", WorkspaceID: "ws-1", Name: "Checking", Balance: dec("100")}
	suite.mockRepo.On("FindAccountByID", ctx, "ws-1", "acc-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, ownerScope(), "acc-1", dto.UpdateAccountRequest{Color: strPtr("#000000")})

	suite.Require().NoError(err)
	suite.True(dec("100").Equal(account.Balance))
	suite.mockRepo.AssertNotCalled(suite.T(), "SetBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SetBalanceFailure() {
	ctx := context.Background()
	stored := &domain.Account{AccountID: "acc-1", WorkspaceID: "ws-1", Name: "Checking", Balance: dec("100")}
	suite.mockRepo.On("FindAccountByID", ctx, "ws-1", "acc-1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockRepo.On("SetBalance", ctx, "ws-1", "acc-1", mock.Anything, "user-owner", fixedNow).
		Return(decimal.Zero, apperrors.NewNotFoundError("account not found")).Once()

	account, err := suite.service.UpdateAccount(ctx, ownerScope(), "acc-1", dto.UpdateAccountRequest{Balance: decimal.NewNullDecimal(dec("5"))})

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_BlankName() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "ws-1", "acc-1").Return(&domain.Account{AccountID: "acc-1", Name: "Checking"}, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, ownerScope(), "acc-1", dto.UpdateAccountRequest{Name: strPtr(" ")})

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteAccount", ctx, "ws-1", "acc-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteAccount(ctx, ownerScope(), "acc-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
