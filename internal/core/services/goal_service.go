package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/SscSPs/workspace_finance_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultGoalEmoji = "🎯"

type goalService struct {
	BaseService
	goalRepo    portsrepo.GoalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewGoalService creates the goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, accountRepo portsrepo.AccountReader, opts ...ServiceOption) portssvc.GoalSvcFacade {
	return &goalService{
		BaseService: newBaseService(opts),
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateGoalRequest) (*domain.Goal, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	current := decimal.Zero
	if req.CurrentAmount.Valid {
		current = req.CurrentAmount.Decimal
	}
	emoji := req.Emoji
	if emoji == "" {
		emoji = defaultGoalEmoji
	}

	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		WorkspaceID:   scope.WorkspaceID,
		Name:          name,
		Emoji:         emoji,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: current,
		TargetDate:    req.TargetDate,
		Status:        domain.GoalActive,
		AuditFields:   auditFields(scope.UserID, s.Now()),
	}
	if goal.TargetAmount.IsPositive() && current.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = domain.GoalCompleted
	}
	if err := accounting.ValidateGoal(goal); err != nil {
		return nil, err
	}
	if nonEmpty(req.AccountID) {
		if _, err := s.accountRepo.FindAccountByID(ctx, scope.WorkspaceID, *req.AccountID); err != nil {
			s.LogFailure(ctx, err, "Goal account lookup failed", slog.String("account_id", *req.AccountID))
			return nil, err
		}
		goal.AccountID = req.AccountID
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogFailure(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, err
	}
	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, scope domain.WorkspaceScope, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, scope.WorkspaceID, goalID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find goal", slog.String("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, scope domain.WorkspaceScope, status *domain.GoalStatus) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, scope.WorkspaceID, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, err
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, scope domain.WorkspaceScope, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	if req.Deposit.Valid {
		return s.deposit(ctx, scope, goalID, req.Deposit.Decimal)
	}

	var name string
	if req.Name != nil {
		var err error
		if name, err = requireName("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if nonEmpty(req.AccountID) {
		if _, err := s.accountRepo.FindAccountByID(ctx, scope.WorkspaceID, *req.AccountID); err != nil {
			s.LogFailure(ctx, err, "Goal account lookup failed", slog.String("account_id", *req.AccountID))
			return nil, err
		}
	}
	now := s.Now()

	goal, err := s.goalRepo.UpdateGoal(ctx, scope.WorkspaceID, goalID, func(goal *domain.Goal) error {
		if req.Name != nil {
			goal.Name = name
		}
		if req.Emoji != nil {
			goal.Emoji = *req.Emoji
		}
		if req.TargetAmount.Valid {
			goal.TargetAmount = req.TargetAmount.Decimal
		}
		if req.TargetDate != nil {
			goal.TargetDate = req.TargetDate
		}
		if nonEmpty(req.AccountID) {
			goal.AccountID = req.AccountID
		}
		if req.Status != nil {
			goal.Status = *req.Status
		} else {
			accounting.SettleGoalStatus(goal)
		}
		if err := accounting.ValidateGoal(*goal); err != nil {
			return err
		}
		goal.Touch(scope.UserID, now)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

// deposit adds to the goal's saved amount. The linked account is not debited.
func (s *goalService) deposit(ctx context.Context, scope domain.WorkspaceScope, goalID string, amount decimal.Decimal) (*domain.Goal, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("deposit must be a positive amount")
	}
	goal, err := s.goalRepo.ApplyDeposit(ctx, scope.WorkspaceID, goalID, amount, scope.UserID, s.Now())
	if err != nil {
		s.LogFailure(ctx, err, "Failed to apply goal deposit", slog.String("goal_id", goalID))
		return nil, err
	}
	s.LogInfo(ctx, "Goal deposit applied",
		slog.String("goal_id", goalID),
		slog.String("amount", amount.String()),
		slog.String("status", string(goal.Status)))
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, scope domain.WorkspaceScope, goalID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, scope.WorkspaceID, goalID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return err
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}
