package services_test

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Workspace ---

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) FindMembershipByUserID(ctx context.Context, userID string) (*domain.WorkspaceUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceUser), args.Error(1)
}

func (m *MockWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceUser, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceUser), args.Error(1)
}

func (m *MockWorkspaceRepository) CreateWorkspaceWithDefaults(ctx context.Context, workspace domain.Workspace, owner domain.WorkspaceUser, categories []domain.Category) error {
	return m.Called(ctx, workspace, owner, categories).Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	return m.Called(ctx, workspace).Error(0)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, membership domain.WorkspaceUser) error {
	return m.Called(ctx, membership).Error(0)
}

func (m *MockWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	return m.Called(ctx, workspaceID, userID).Error(0)
}

// --- Account ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, workspaceID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, workspaceID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, workspaceID string) ([]domain.Account, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, workspaceID, accountID string) error {
	return m.Called(ctx, workspaceID, accountID).Error(0)
}

func (m *MockAccountRepository) SetBalance(ctx context.Context, workspaceID, accountID string, balance decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, workspaceID, accountID, balance, userID, now)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, workspaceID, accountID string, delta decimal.Decimal, userID string, now time.Time) error {
	return m.Called(ctx, tx, workspaceID, accountID, delta, userID, now).Error(0)
}

// --- Credit card ---

type MockCreditCardRepository struct {
	mock.Mock
}

func (m *MockCreditCardRepository) FindCreditCardByID(ctx context.Context, workspaceID, creditCardID string) (*domain.CreditCard, error) {
	args := m.Called(ctx, workspaceID, creditCardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) ListCreditCards(ctx context.Context, workspaceID string) ([]domain.CreditCard, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) SaveCreditCard(ctx context.Context, card domain.CreditCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCreditCardRepository) UpdateCreditCard(ctx context.Context, card domain.CreditCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCreditCardRepository) DeleteCreditCard(ctx context.Context, workspaceID, creditCardID string) error {
	return m.Called(ctx, workspaceID, creditCardID).Error(0)
}

// --- Category ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, workspaceID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, workspaceID string, categoryType *domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, workspaceID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategoryAndDetach(ctx context.Context, workspaceID, categoryID string) error {
	return m.Called(ctx, workspaceID, categoryID).Error(0)
}

// --- Transaction ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, workspaceID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, workspaceID string, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, workspaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) ChangeTransaction(ctx context.Context, workspaceID, transactionID string, change domain.TransactionChange, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, transactionID, change, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, workspaceID, transactionID, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, transactionID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Goal ---

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, workspaceID, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, workspaceID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, workspaceID string, status *domain.GoalStatus) ([]domain.Goal, error) {
	args := m.Called(ctx, workspaceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

// UpdateGoal runs edit against a copy of the stubbed row, standing in for
// the row read under lock.
func (m *MockGoalRepository) UpdateGoal(ctx context.Context, workspaceID, goalID string, edit portsrepo.GoalEdit) (*domain.Goal, error) {
	args := m.Called(ctx, workspaceID, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	goal := *args.Get(0).(*domain.Goal)
	if err := edit(&goal); err != nil {
		return nil, err
	}
	return &goal, args.Error(1)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, workspaceID, goalID string) error {
	return m.Called(ctx, workspaceID, goalID).Error(0)
}

func (m *MockGoalRepository) ApplyDeposit(ctx context.Context, workspaceID, goalID string, amount decimal.Decimal, userID string, now time.Time) (*domain.Goal, error) {
	args := m.Called(ctx, workspaceID, goalID, amount, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

// --- User ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID, avatarURL string, now time.Time) error {
	return m.Called(ctx, userID, avatarURL, now).Error(0)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, userID string, provider domain.AuthProvider, providerUserID string, now time.Time) error {
	return m.Called(ctx, userID, provider, providerUserID, now).Error(0)
}

// --- Reporting ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListPaidTransactionsInRange(ctx context.Context, workspaceID string, from, to civil.Date) ([]domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportingRepository) ListCardExpensesInRange(ctx context.Context, workspaceID string, creditCardIDs []string, from, to civil.Date) ([]domain.Transaction, error) {
	args := m.Called(ctx, workspaceID, creditCardIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportingRepository) SumAccountBalances(ctx context.Context, workspaceID string) (decimal.Decimal, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Helpers ---

var fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func ownerScope() domain.WorkspaceScope {
	return domain.WorkspaceScope{WorkspaceID: "ws-1", UserID: "user-owner", Role: domain.RoleOwner}
}

func memberScope() domain.WorkspaceScope {
	return domain.WorkspaceScope{WorkspaceID: "ws-1", UserID: "user-member", Role: domain.RoleMember}
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) civil.Date { return civil.Date{Year: y, Month: m, Day: d} }
