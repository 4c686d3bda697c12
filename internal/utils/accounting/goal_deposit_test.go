package accounting

import (
	"testing"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goal(current, target int64, status domain.GoalStatus) domain.Goal {
	return domain.Goal{
		GoalID:        "goal-1",
		Name:          "Trip",
		CurrentAmount: decimal.NewFromInt(current),
		TargetAmount:  decimal.NewFromInt(target),
		Status:        status,
	}
}

func TestApplyGoalDeposit(t *testing.T) {
	tests := []struct {
		name        string
		goal        domain.Goal
		deposit     int64
		wantCurrent int64
		wantStatus  domain.GoalStatus
	}{
		{"partial deposit", goal(100, 1000, domain.GoalActive), 200, 300, domain.GoalActive},
		{"reaches target exactly", goal(800, 1000, domain.GoalActive), 200, 1000, domain.GoalCompleted},
		{"overshoot is capped", goal(900, 1000, domain.GoalActive), 200, 1000, domain.GoalCompleted},
		{"paused goal stays paused", goal(10, 1000, domain.GoalPaused), 50, 60, domain.GoalPaused},
		{"paused goal completes at target", goal(990, 1000, domain.GoalPaused), 50, 1000, domain.GoalCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyGoalDeposit(tt.goal, decimal.NewFromInt(tt.deposit))
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.wantCurrent).Equal(got.CurrentAmount), "current %s", got.CurrentAmount)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.goal.GoalID, got.GoalID)
		})
	}
}

func TestApplyGoalDeposit_RejectsNonPositive(t *testing.T) {
	original := goal(100, 1000, domain.GoalActive)
	for _, amount := range []int64{0, -5} {
		got, err := ApplyGoalDeposit(original, decimal.NewFromInt(amount))
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.True(t, original.CurrentAmount.Equal(got.CurrentAmount), "goal is unchanged")
	}
}

func TestValidateGoal(t *testing.T) {
	assert.NoError(t, ValidateGoal(goal(0, 1000, domain.GoalActive)))
	assert.NoError(t, ValidateGoal(goal(1000, 1000, domain.GoalCompleted)))

	assert.ErrorIs(t, ValidateGoal(goal(0, 0, domain.GoalActive)), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateGoal(goal(-1, 1000, domain.GoalActive)), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateGoal(goal(1001, 1000, domain.GoalActive)), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateGoal(goal(0, 1000, "archived")), apperrors.ErrValidation)
}

func TestValidateGoal_CompletedNeedsTarget(t *testing.T) {
	assert.ErrorIs(t, ValidateGoal(goal(600, 1000, domain.GoalCompleted)), apperrors.ErrValidation)
	assert.NoError(t, ValidateGoal(goal(600, 1000, domain.GoalPaused)))
}

func TestSettleGoalStatus(t *testing.T) {
	tests := []struct {
		name string
		goal domain.Goal
		want domain.GoalStatus
	}{
		{"raised target reopens", goal(1000, 1500, domain.GoalCompleted), domain.GoalActive},
		{"lowered target completes", goal(600, 600, domain.GoalActive), domain.GoalCompleted},
		{"completed at target stays", goal(1000, 1000, domain.GoalCompleted), domain.GoalCompleted},
		{"paused is left alone", goal(1000, 1000, domain.GoalPaused), domain.GoalPaused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.goal
			SettleGoalStatus(&g)
			assert.Equal(t, tt.want, g.Status)
		})
	}
}
