package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the expense total of one category in a month.
type CategoryTotal struct {
	CategoryID *string         `json:"categoryID,omitempty"`
	Name       string          `json:"name"`
	ColorHex   string          `json:"colorHex"`
	Total      decimal.Decimal `json:"total"`
}

// MonthSummary aggregates the paid transactions of one month.
type MonthSummary struct {
	MonthStart    civil.Date      `json:"monthStart"`
	MonthEnd      civil.Date      `json:"monthEnd"`
	MonthIncome   decimal.Decimal `json:"monthIncome"`
	MonthExpense  decimal.Decimal `json:"monthExpense"`
	TopCategories []CategoryTotal `json:"topCategories"`
}

// Dashboard is the aggregated read model served by GET /dashboard.
type Dashboard struct {
	MonthSummary
	TotalBalance       decimal.Decimal         `json:"totalBalance"`
	LastMonthExpense   decimal.Decimal         `json:"lastMonthExpense"`
	ExpenseVariation   int64                   `json:"expenseVariation"`
	Accounts           []Account               `json:"accounts"`
	CreditCards        []CreditCardWithInvoice `json:"creditCards"`
	ActiveGoals        []Goal                  `json:"activeGoals"`
	RecentTransactions []Transaction           `json:"recentTransactions"`
}

// BillingCycle is the invoice window of a credit card, both ends inclusive.
type BillingCycle struct {
	Start   civil.Date `json:"cycleStart"`
	End     civil.Date `json:"cycleEnd"`
	DueDate civil.Date `json:"dueDate"`
}

// InvoiceSummary is the computed usage of a card within one billing cycle.
type InvoiceSummary struct {
	BillingCycle
	CurrentInvoice decimal.Decimal `json:"currentInvoice"`
	UsagePercent   int64           `json:"usagePercent"`
	Available      decimal.Decimal `json:"available"`
}

// CreditCardWithInvoice pairs a card with its current invoice.
type CreditCardWithInvoice struct {
	CreditCard
	Invoice InvoiceSummary `json:"invoice"`
}
