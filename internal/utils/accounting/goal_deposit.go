package accounting

import (
	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyGoalDeposit adds amount to the goal, capping at the target.
// Reaching the target marks the goal completed; otherwise the status is left
// as it was, so a paused goal stays paused.
// Linked accounts are not debited.
func ApplyGoalDeposit(goal domain.Goal, amount decimal.Decimal) (domain.Goal, error) {
	if !amount.IsPositive() {
		return goal, apperrors.NewValidationFailedError("deposit must be a positive amount")
	}

	newAmount := decimal.Min(goal.CurrentAmount.Add(amount), goal.TargetAmount)
	goal.CurrentAmount = newAmount
	if newAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.Status = domain.GoalCompleted
	}
	return goal, nil
}

// SettleGoalStatus moves a completed goal back to active once its target is
// raised above the saved amount, and completes an active goal whose target
// was lowered to it. Paused goals keep their status.
func SettleGoalStatus(goal *domain.Goal) {
	reached := goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
	switch {
	case goal.Status == domain.GoalCompleted && !reached:
		goal.Status = domain.GoalActive
	case goal.Status == domain.GoalActive && reached:
		goal.Status = domain.GoalCompleted
	}
}

// ValidateGoal enforces target > 0, 0 <= current <= target and that a
// completed goal has reached its target.
func ValidateGoal(goal domain.Goal) error {
	if !goal.TargetAmount.IsPositive() {
		return apperrors.NewValidationFailedError("target amount must be greater than zero")
	}
	if goal.CurrentAmount.IsNegative() {
		return apperrors.NewValidationFailedError("current amount must not be negative")
	}
	if goal.CurrentAmount.GreaterThan(goal.TargetAmount) {
		return apperrors.NewValidationFailedError("current amount must not exceed the target amount")
	}
	switch goal.Status {
	case domain.GoalActive, domain.GoalCompleted, domain.GoalPaused:
	default:
		return apperrors.NewValidationFailedError("status must be one of active, completed, paused")
	}
	if goal.Status == domain.GoalCompleted && goal.CurrentAmount.LessThan(goal.TargetAmount) {
		return apperrors.NewValidationFailedError("goal cannot be completed before reaching its target amount")
	}
	return nil
}
