package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/core/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOnboarding_CreateFirstAccountUsesResolvedWorkspace(t *testing.T) {
	ctx := context.Background()
	workspaceRepo := new(MockWorkspaceRepository)
	accountRepo := new(MockAccountRepository)
	workspaces := services.NewWorkspaceService(workspaceRepo, new(MockUserRepository), services.WithClock(fixedClock))
	onboarding := services.NewOnboardingService(workspaces, services.NewAccountService(accountRepo, services.WithClock(fixedClock)))

	workspaceRepo.On("FindMembershipByUserID", ctx, "user-owner").
		Return(&domain.WorkspaceUser{UserID: "user-owner", WorkspaceID: "ws-1", Role: domain.RoleOwner}, nil).Once()
	accountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.WorkspaceID == "ws-1" && a.CreatedBy == "user-owner"
	})).Return(nil).Once()

	account, err := onboarding.CreateFirstAccount(ctx, "user-owner", dto.CreateAccountRequest{Name: "Checking", AccountType: domain.AccountChecking})

	require.NoError(t, err)
	assert.Equal(t, "ws-1", account.WorkspaceID)
	accountRepo.AssertExpectations(t)
}

func TestOnboarding_CreateFirstAccountWithoutWorkspace(t *testing.T) {
	ctx := context.Background()
	workspaceRepo := new(MockWorkspaceRepository)
	accountRepo := new(MockAccountRepository)
	workspaces := services.NewWorkspaceService(workspaceRepo, new(MockUserRepository))
	onboarding := services.NewOnboardingService(workspaces, services.NewAccountService(accountRepo))

	workspaceRepo.On("FindMembershipByUserID", ctx, "user-new").
		Return(nil, apperrors.NewNotFoundError("workspace membership not found")).Once()

	account, err := onboarding.CreateFirstAccount(ctx, "user-new", dto.CreateAccountRequest{Name: "Checking", AccountType: domain.AccountChecking})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	accountRepo.AssertNotCalled(t, "SaveAccount", mock.Anything, mock.Anything)
}
