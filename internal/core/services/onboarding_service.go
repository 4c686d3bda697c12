package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

type onboardingService struct {
	BaseService
	workspaces portssvc.WorkspaceSvcFacade
	accounts   portssvc.AccountWriterSvc
}

// NewOnboardingService creates the onboarding flow on top of the workspace
// and account services.
func NewOnboardingService(workspaces portssvc.WorkspaceSvcFacade, accounts portssvc.AccountWriterSvc, opts ...ServiceOption) portssvc.OnboardingSvc {
	return &onboardingService{
		BaseService: newBaseService(opts),
		workspaces:  workspaces,
		accounts:    accounts,
	}
}

var _ portssvc.OnboardingSvc = (*onboardingService)(nil)

func (s *onboardingService) CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	ws, err := s.workspaces.CreateWorkspace(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Onboarding workspace created", slog.String("workspace_id", ws.WorkspaceID))
	return ws, nil
}

func (s *onboardingService) CreateFirstAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	scope, err := s.workspaces.ResolveScope(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.accounts.CreateAccount(ctx, *scope, req)
}
