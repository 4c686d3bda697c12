package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultAccountColor = "#3B82F6"

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, opts ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(opts),
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateAccountRequest) (*domain.Account, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if req.InitialBalance.Valid {
		balance = req.InitialBalance.Decimal
	}
	color := req.Color
	if color == "" {
		color = defaultAccountColor
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		WorkspaceID: scope.WorkspaceID,
		Name:        name,
		AccountType: req.AccountType,
		Balance:     balance,
		Color:       color,
		AuditFields: auditFields(scope.UserID, s.Now()),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogFailure(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, scope domain.WorkspaceScope, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, scope.WorkspaceID, accountID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, scope domain.WorkspaceScope) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, scope.WorkspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, scope domain.WorkspaceScope, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, scope, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if account.Name, err = requireName("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.Color != nil {
		account.Color = *req.Color
	}
	now := s.Now()
	account.Touch(scope.UserID, now)

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogFailure(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	// A manual balance is the value the user counted, so it replaces
	// whatever is stored when the row is locked.
	if req.Balance.Valid {
		previous, err := s.accountRepo.SetBalance(ctx, scope.WorkspaceID, accountID, req.Balance.Decimal, scope.UserID, now)
		if err != nil {
			s.LogFailure(ctx, err, "Failed to correct account balance", slog.String("account_id", accountID))
			return nil, err
		}
		if !previous.Equal(req.Balance.Decimal) {
			s.LogInfo(ctx, "Manual balance correction",
				slog.String("account_id", accountID),
				slog.String("delta", req.Balance.Decimal.Sub(previous).String()))
		}
		account.Balance = req.Balance.Decimal
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, scope domain.WorkspaceScope, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, scope.WorkspaceID, accountID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}
