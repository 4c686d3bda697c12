package handlers_test

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/stretchr/testify/mock"
)

// --- Mock WorkspaceService ---
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) GetWorkspace(ctx context.Context, scope domain.WorkspaceScope) (*domain.Workspace, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) ListMembers(ctx context.Context, scope domain.WorkspaceScope) ([]domain.WorkspaceUser, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceUser), args.Error(1)
}
func (m *MockWorkspaceService) CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) UpdateWorkspace(ctx context.Context, scope domain.WorkspaceScope, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}
func (m *MockWorkspaceService) AddMember(ctx context.Context, scope domain.WorkspaceScope, req dto.AddMemberRequest) (*domain.WorkspaceUser, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceUser), args.Error(1)
}
func (m *MockWorkspaceService) RemoveMember(ctx context.Context, scope domain.WorkspaceScope, userID string) error {
	args := m.Called(ctx, scope, userID)
	return args.Error(0)
}
func (m *MockWorkspaceService) ResolveScope(ctx context.Context, userID string) (*domain.WorkspaceScope, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkspaceScope), args.Error(1)
}
func (m *MockWorkspaceService) AuthorizeOwner(ctx context.Context, scope domain.WorkspaceScope) error {
	args := m.Called(ctx, scope)
	return args.Error(0)
}

var _ portssvc.WorkspaceSvcFacade = (*MockWorkspaceService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, scope domain.WorkspaceScope, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, scope, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, scope domain.WorkspaceScope) ([]domain.Account, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, scope domain.WorkspaceScope, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, scope, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, scope domain.WorkspaceScope, accountID string) error {
	args := m.Called(ctx, scope, accountID)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, scope domain.WorkspaceScope, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, scope, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, scope domain.WorkspaceScope, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}
func (m *MockTransactionService) CreateTransaction(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, scope, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, scope domain.WorkspaceScope, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, scope, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, scope domain.WorkspaceScope, transactionID string) error {
	args := m.Called(ctx, scope, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, scope domain.WorkspaceScope, month civil.Date) (*domain.Dashboard, error) {
	args := m.Called(ctx, scope, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) IssueToken(ctx context.Context, user *domain.User) (utils.SessionToken, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(utils.SessionToken), args.Error(1)
}
func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, utils.SessionToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, utils.SessionToken{}, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(utils.SessionToken), args.Error(2)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, utils.SessionToken, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, utils.SessionToken{}, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(utils.SessionToken), args.Error(2)
}
func (m *MockAuthService) GoogleEnabled() bool {
	return m.Called().Bool(0)
}
func (m *MockAuthService) GoogleLoginURL(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) GoogleCallback(ctx context.Context, code string) (*domain.User, utils.SessionToken, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, utils.SessionToken{}, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(utils.SessionToken), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
