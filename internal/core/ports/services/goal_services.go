package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// GoalReaderSvc defines read operations for goal data
type GoalReaderSvc interface {
	GetGoalByID(ctx context.Context, scope domain.WorkspaceScope, goalID string) (*domain.Goal, error)
	ListGoals(ctx context.Context, scope domain.WorkspaceScope, status *domain.GoalStatus) ([]domain.Goal, error)
}

// GoalWriterSvc defines write operations for goal data
type GoalWriterSvc interface {
	CreateGoal(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateGoalRequest) (*domain.Goal, error)

	// UpdateGoal applies a deposit when the request carries one and a field
	// update otherwise.
	UpdateGoal(ctx context.Context, scope domain.WorkspaceScope, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, scope domain.WorkspaceScope, goalID string) error
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
