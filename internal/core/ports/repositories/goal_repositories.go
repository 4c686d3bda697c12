package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for goal data
type GoalReader interface {
	FindGoalByID(ctx context.Context, workspaceID, goalID string) (*domain.Goal, error)
	// ListGoals lists goals of a workspace, optionally only those in status.
	ListGoals(ctx context.Context, workspaceID string, status *domain.GoalStatus) ([]domain.Goal, error)
}

// GoalEdit changes a goal read under a row lock. Returning an error aborts
// the update.
type GoalEdit func(goal *domain.Goal) error

// GoalWriter defines write operations for goal data
type GoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal locks the goal row, runs edit on it and writes the edited
	// fields back in one transaction. The saved amount only moves through
	// ApplyDeposit and is never written here.
	UpdateGoal(ctx context.Context, workspaceID, goalID string, edit GoalEdit) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, workspaceID, goalID string) error

	// ApplyDeposit locks the goal row, applies the deposit rule and writes the
	// result in one transaction.
	ApplyDeposit(ctx context.Context, workspaceID, goalID string, amount decimal.Decimal, userID string, now time.Time) (*domain.Goal, error)
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
