package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the row shape of the goals table.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	WorkspaceID   string          `db:"workspace_id"`
	AccountID     *string         `db:"account_id"`
	Name          string          `db:"name"`
	Emoji         string          `db:"emoji"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetDate    *time.Time      `db:"target_date"`
	Status        string          `db:"status"`
	AuditFields
}
