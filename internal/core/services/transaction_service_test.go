package services_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/core/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	txnRepo      *MockTransactionRepository
	accountRepo  *MockAccountRepository
	cardRepo     *MockCreditCardRepository
	categoryRepo *MockCategoryRepository
	service      portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.cardRepo = new(MockCreditCardRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.txnRepo, suite.accountRepo, suite.cardRepo, suite.categoryRepo, services.WithClock(fixedClock))
}

func (suite *TransactionServiceTestSuite) expenseRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Amount:      dec("42.90"),
		Date:        day(2024, time.March, 9),
		Description: " Lunch ",
		AccountID:   strPtr("acc-1"),
		CategoryID:  strPtr("cat-food"),
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsToPaid() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountByID", ctx, "ws-1", "acc-1").Return(&domain.Account{AccountID: "acc-1"}, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", ctx, "ws-1", "cat-food").
		Return(&domain.Category{CategoryID: "cat-food", Type: domain.Expense}, nil).Once()
	suite.txnRepo.On("CreateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.StatusPaid && txn.Description == "Lunch" && txn.WorkspaceID == "ws-1"
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, memberScope(), suite.expenseRequest())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, txn.Status)
	suite.Equal("user-member", txn.CreatedBy)
	suite.txnRepo.AssertExpectations(suite.T())
	suite.categoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NeedsExactlyOneSource() {
	ctx := context.Background()

	both := suite.expenseRequest()
	both.CreditCardID = strPtr("card-1")
	_, err := suite.service.CreateTransaction(ctx, ownerScope(), both)
	suite.ErrorIs(err, apperrors.ErrValidation)

	neither := suite.expenseRequest()
	neither.AccountID = nil
	_, err = suite.service.CreateTransaction(ctx, ownerScope(), neither)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.txnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	req := suite.expenseRequest()
	req.Amount = dec("-1")

	_, err := suite.service.CreateTransaction(context.Background(), ownerScope(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingDate() {
	req := suite.expenseRequest()
	req.Date = civil.Date{}

	_, err := suite.service.CreateTransaction(context.Background(), ownerScope(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("date is required", apperrors.PublicMessage(err, ""))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountByID", ctx, "ws-1", "acc-1").Return(&domain.Account{AccountID: "acc-1"}, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", ctx, "ws-1", "cat-food").
		Return(&domain.Category{CategoryID: "cat-food", Type: domain.Income}, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, ownerScope(), suite.expenseRequest())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CardFromAnotherWorkspace() {
	ctx := context.Background()
	req := suite.expenseRequest()
	req.AccountID = nil
	req.CreditCardID = strPtr("card-foreign")
	req.CategoryID = nil
	suite.cardRepo.On("FindCreditCardByID", ctx, "ws-1", "card-foreign").
		Return(nil, apperrors.NewNotFoundError("credit card not found")).Once()

	_, err := suite.service.CreateTransaction(ctx, ownerScope(), req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.txnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RequiresAChange() {
	_, err := suite.service.UpdateTransaction(context.Background(), ownerScope(), "txn-1", dto.UpdateTransactionRequest{})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.txnRepo.AssertNotCalled(suite.T(), "ChangeTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_StatusChange() {
	ctx := context.Background()
	pending := domain.StatusPending
	suite.txnRepo.On("ChangeTransaction", ctx, "ws-1", "txn-1",
		domain.TransactionChange{Status: &pending}, "user-owner", fixedNow,
	).Return(&domain.Transaction{TransactionID: "txn-1", Status: domain.StatusPending}, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, ownerScope(), "txn-1", dto.UpdateTransactionRequest{Status: &pending})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, txn.Status)
	suite.txnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyPage() {
	ctx := context.Background()
	filter := domain.TransactionFilter{Limit: 50}
	suite.txnRepo.On("ListTransactions", ctx, "ws-1", filter).Return(&domain.TransactionPage{}, nil).Once()

	page, err := suite.service.ListTransactions(ctx, ownerScope(), filter)

	suite.Require().NoError(err)
	suite.NotNil(page.Transactions)
	suite.Nil(page.Next)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	suite.txnRepo.On("DeleteTransaction", ctx, "ws-1", "txn-x", "user-owner", fixedNow).
		Return(nil, apperrors.NewNotFoundError("transaction not found")).Once()

	err := suite.service.DeleteTransaction(ctx, ownerScope(), "txn-x")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	ctx := context.Background()
	suite.txnRepo.On("DeleteTransaction", ctx, "ws-1", "txn-1", "user-owner", fixedNow).
		Return(&domain.Transaction{TransactionID: "txn-1", Type: domain.Income, Amount: dec("10"), Status: domain.StatusPaid, AccountID: strPtr("acc-1")}, nil).Once()

	suite.NoError(suite.service.DeleteTransaction(ctx, ownerScope(), "txn-1"))
	suite.txnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
