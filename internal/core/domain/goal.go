package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// GoalStatus tracks the lifecycle of a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
)

// Goal is a savings target. AccountID is informational only: deposits never
// move money out of the linked account.
type Goal struct {
	GoalID        string          `json:"goalID"`
	WorkspaceID   string          `json:"workspaceID"`
	AccountID     *string         `json:"accountID,omitempty"`
	Name          string          `json:"name"`
	Emoji         string          `json:"emoji"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *civil.Date     `json:"targetDate,omitempty"`
	Status        GoalStatus      `json:"status"`
	AuditFields
}
