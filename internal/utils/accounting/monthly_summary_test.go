package accounting

import (
	"fmt"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(categoryID string, amount int64, d civil.Date) domain.Transaction {
	txn := domain.Transaction{
		AccountID: strPtr("acc-1"),
		Type:      domain.Expense,
		Amount:    decimal.NewFromInt(amount),
		Date:      d,
		Status:    domain.StatusPaid,
	}
	if categoryID != "" {
		txn.CategoryID = strPtr(categoryID)
	}
	return txn
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(date(2024, 2, 14))
	assert.Equal(t, date(2024, 2, 1), start)
	assert.Equal(t, date(2024, 2, 29), end)

	start, end = MonthWindow(date(2023, 12, 31))
	assert.Equal(t, date(2023, 12, 1), start)
	assert.Equal(t, date(2023, 12, 31), end)
}

func TestPreviousMonth(t *testing.T) {
	assert.Equal(t, date(2023, 12, 31), PreviousMonth(date(2024, 1, 15)))
	assert.Equal(t, date(2024, 2, 29), PreviousMonth(date(2024, 3, 31)))
}

func TestParseMonth(t *testing.T) {
	d, err := ParseMonth("2024-07")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 7, 1), d)

	for _, bad := range []string{"2024-13", "2024/07", "july", ""} {
		_, err := ParseMonth(bad)
		assert.Error(t, err, bad)
	}
}

func TestSummarizeMonth(t *testing.T) {
	start, end := MonthWindow(date(2024, 3, 1))
	categories := []domain.Category{
		{CategoryID: "food", Name: "Food", ColorHex: "#f00"},
		{CategoryID: "rent", Name: "Housing", ColorHex: "#0f0"},
	}
	txns := []domain.Transaction{
		expense("food", 30, date(2024, 3, 1)),
		expense("rent", 1000, date(2024, 3, 31)),
		expense("food", 20, date(2024, 3, 10)),
		expense("", 5, date(2024, 3, 12)),
		expense("food", 500, date(2024, 2, 29)), // previous month
		{AccountID: strPtr("acc-1"), Type: domain.Expense, Amount: decimal.NewFromInt(70), Date: date(2024, 3, 5), Status: domain.StatusPending},
		{AccountID: strPtr("acc-1"), Type: domain.Income, Amount: decimal.NewFromInt(3000), Date: date(2024, 3, 5), Status: domain.StatusPaid},
		{AccountID: strPtr("acc-1"), Type: domain.Income, Amount: decimal.NewFromInt(400), Date: date(2024, 3, 6), Status: domain.StatusPending},
	}

	summary := SummarizeMonth(start, end, txns, categories)

	assert.Equal(t, start, summary.MonthStart)
	assert.Equal(t, end, summary.MonthEnd)
	assert.True(t, decimal.NewFromInt(3000).Equal(summary.MonthIncome), "income %s", summary.MonthIncome)
	assert.True(t, decimal.NewFromInt(1055).Equal(summary.MonthExpense), "expense %s", summary.MonthExpense)

	require.Len(t, summary.TopCategories, 3)
	assert.Equal(t, "Housing", summary.TopCategories[0].Name)
	assert.Equal(t, "#0f0", summary.TopCategories[0].ColorHex)
	assert.Equal(t, "Food", summary.TopCategories[1].Name)
	assert.True(t, decimal.NewFromInt(50).Equal(summary.TopCategories[1].Total))
	assert.Equal(t, "Uncategorized", summary.TopCategories[2].Name)
	assert.Nil(t, summary.TopCategories[2].CategoryID)
}

func TestSummarizeMonth_KeepsTopSixInStableOrder(t *testing.T) {
	start, end := MonthWindow(date(2024, 5, 1))
	var categories []domain.Category
	var txns []domain.Transaction
	// c0..c7 all spend 10 except c5 which spends 99.
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("c%d", i)
		categories = append(categories, domain.Category{CategoryID: id, Name: id})
		amount := int64(10)
		if i == 5 {
			amount = 99
		}
		txns = append(txns, expense(id, amount, date(2024, 5, 2)))
	}

	summary := SummarizeMonth(start, end, txns, categories)

	require.Len(t, summary.TopCategories, TopCategoryCount)
	names := make([]string, 0, len(summary.TopCategories))
	for _, ct := range summary.TopCategories {
		names = append(names, ct.Name)
	}
	assert.Equal(t, []string{"c5", "c0", "c1", "c2", "c3", "c4"}, names)
}

func TestSummarizeMonth_Empty(t *testing.T) {
	start, end := MonthWindow(date(2024, 5, 1))
	summary := SummarizeMonth(start, end, nil, nil)
	assert.True(t, summary.MonthIncome.IsZero())
	assert.True(t, summary.MonthExpense.IsZero())
	assert.NotNil(t, summary.TopCategories)
	assert.Empty(t, summary.TopCategories)
}

func TestExpenseVariation(t *testing.T) {
	tests := []struct {
		this, last string
		want       int64
	}{
		{"150", "100", 50},
		{"50", "100", -50},
		{"100", "0", 0},
		{"0", "0", 0},
		{"0", "100", -100},
		{"100.5", "100", 1}, // 0.5 rounds up
		{"99.5", "100", 0},  // -0.5 rounds toward +inf
		{"1", "3", -67},
	}
	for _, tt := range tests {
		got := ExpenseVariation(decimal.RequireFromString(tt.this), decimal.RequireFromString(tt.last))
		assert.Equal(t, tt.want, got, "this %s last %s", tt.this, tt.last)
	}
}
