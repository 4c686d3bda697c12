package dto

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name          string              `json:"name" binding:"required,max=100"`
	Emoji         string              `json:"emoji" binding:"omitempty,max=16"`
	TargetAmount  decimal.Decimal     `json:"targetAmount" swaggertype:"string"`
	CurrentAmount decimal.NullDecimal `json:"currentAmount" swaggertype:"string"`
	TargetDate    *civil.Date         `json:"targetDate" swaggertype:"string" example:"2025-12-31"`
	AccountID     *string             `json:"accountID" binding:"omitempty,uuid"`
}

// UpdateGoalRequest either deposits into the goal or edits its fields.
// When Deposit is present every other field is ignored.
type UpdateGoalRequest struct {
	Deposit      decimal.NullDecimal `json:"deposit" swaggertype:"string"`
	Name         *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Emoji        *string             `json:"emoji" binding:"omitempty,max=16"`
	TargetAmount decimal.NullDecimal `json:"targetAmount" swaggertype:"string"`
	TargetDate   *civil.Date         `json:"targetDate" swaggertype:"string"`
	Status       *domain.GoalStatus  `json:"status" binding:"omitempty,oneof=active completed paused"`
	AccountID    *string             `json:"accountID" binding:"omitempty,uuid"`
}

// ListGoalsParams filters goals by status.
type ListGoalsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=active completed paused"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string            `json:"goalID"`
	Name          string            `json:"name"`
	Emoji         string            `json:"emoji"`
	TargetAmount  decimal.Decimal   `json:"targetAmount" swaggertype:"string"`
	CurrentAmount decimal.Decimal   `json:"currentAmount" swaggertype:"string"`
	TargetDate    *civil.Date       `json:"targetDate,omitempty" swaggertype:"string"`
	Status        domain.GoalStatus `json:"status"`
	AccountID     *string           `json:"accountID,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		Emoji:         g.Emoji,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Status:        g.Status,
		AccountID:     g.AccountID,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGoalResponse converts goals to their response DTOs.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
