package dto

import (
	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams selects the month to aggregate. Empty means the current month.
type DashboardParams struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// CategoryTotalResponse is one slice of the expense breakdown.
type CategoryTotalResponse struct {
	CategoryID *string         `json:"categoryID,omitempty"`
	Name       string          `json:"name"`
	ColorHex   string          `json:"colorHex"`
	Total      decimal.Decimal `json:"total" swaggertype:"string"`
}

// DashboardResponse is the aggregated monthly view of a workspace.
type DashboardResponse struct {
	MonthStart         civil.Date              `json:"monthStart" swaggertype:"string"`
	MonthEnd           civil.Date              `json:"monthEnd" swaggertype:"string"`
	TotalBalance       decimal.Decimal         `json:"totalBalance" swaggertype:"string"`
	MonthIncome        decimal.Decimal         `json:"monthIncome" swaggertype:"string"`
	MonthExpense       decimal.Decimal         `json:"monthExpense" swaggertype:"string"`
	LastMonthExpense   decimal.Decimal         `json:"lastMonthExpense" swaggertype:"string"`
	ExpenseVariation   int64                   `json:"expenseVariation"`
	TopCategories      []CategoryTotalResponse `json:"topCategories"`
	Accounts           []AccountResponse       `json:"accounts"`
	CreditCards        []CreditCardResponse    `json:"creditCards"`
	ActiveGoals        []GoalResponse          `json:"activeGoals"`
	RecentTransactions []TransactionResponse   `json:"recentTransactions"`
}

// ToDashboardResponse converts the domain read model to its DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	top := make([]CategoryTotalResponse, len(d.TopCategories))
	for i, c := range d.TopCategories {
		top[i] = CategoryTotalResponse{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			ColorHex:   c.ColorHex,
			Total:      c.Total,
		}
	}
	return DashboardResponse{
		MonthStart:         d.MonthStart,
		MonthEnd:           d.MonthEnd,
		TotalBalance:       d.TotalBalance,
		MonthIncome:        d.MonthIncome,
		MonthExpense:       d.MonthExpense,
		LastMonthExpense:   d.LastMonthExpense,
		ExpenseVariation:   d.ExpenseVariation,
		TopCategories:      top,
		Accounts:           ToListAccountResponse(d.Accounts),
		CreditCards:        ToListCreditCardResponse(d.CreditCards),
		ActiveGoals:        ToListGoalResponse(d.ActiveGoals),
		RecentTransactions: ToTransactionResponses(d.RecentTransactions),
	}
}
