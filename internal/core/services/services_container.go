package services

import (
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, repos.UserRepo, opts...)
	container.Account = NewAccountService(repos.AccountRepo, opts...)
	container.CreditCard = NewCreditCardService(repos.CreditCardRepo, repos.AccountRepo, repos.ReportingRepo, opts...)
	container.Category = NewCategoryService(repos.CategoryRepo, opts...)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CreditCardRepo, repos.CategoryRepo, opts...)
	container.Goal = NewGoalService(repos.GoalRepo, repos.AccountRepo, opts...)
	container.Dashboard = NewDashboardService(repos, container.CreditCard, opts...)
	container.Onboarding = NewOnboardingService(container.Workspace, container.Account, opts...)
	container.User = NewUserService(repos.UserRepo, cfg.AvatarMaxBytes, opts...)
	container.Auth = NewAuthService(cfg, container.User, NewGoogleOAuthProvider(cfg), opts...)

	return container
}
