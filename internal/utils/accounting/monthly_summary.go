package accounting

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TopCategoryCount is how many categories the dashboard breakdown keeps.
const TopCategoryCount = 6

const uncategorizedName = "Uncategorized"

// MonthWindow returns the first and last day of the month containing d.
func MonthWindow(d civil.Date) (civil.Date, civil.Date) {
	start := civil.Date{Year: d.Year, Month: d.Month, Day: 1}
	// Day 0 of the next month is the last day of this one.
	end := normalizedDate(d.Year, d.Month+1, 0)
	return start, end
}

// PreviousMonth returns any day inside the month before the one containing d.
func PreviousMonth(d civil.Date) civil.Date {
	start, _ := MonthWindow(d)
	return start.AddDays(-1)
}

// ParseMonth parses "YYYY-MM" into the first day of that month.
func ParseMonth(s string) (civil.Date, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(t), nil
}

// SummarizeMonth totals paid income and expense within [start, end] and
// builds the per-category expense ranking.
//
// Categories keep the order in which they are first seen in txns, and the
// ranking uses a stable sort so equal totals keep that order.
func SummarizeMonth(start, end civil.Date, txns []domain.Transaction, categories []domain.Category) domain.MonthSummary {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c
	}

	window := domain.BillingCycle{Start: start, End: end}
	income, expense := decimal.Zero, decimal.Zero
	totals := []domain.CategoryTotal{}
	index := map[string]int{}

	for _, txn := range txns {
		if !txn.IsPaid() || !InCycle(window, txn.Date) {
			continue
		}
		if txn.Type == domain.Income {
			income = income.Add(txn.Amount)
			continue
		}
		expense = expense.Add(txn.Amount)

		key := ""
		if txn.CategoryID != nil {
			key = *txn.CategoryID
		}
		i, seen := index[key]
		if !seen {
			ct := domain.CategoryTotal{Name: uncategorizedName, Total: decimal.Zero}
			if cat, ok := byID[key]; ok {
				id := cat.CategoryID
				ct.CategoryID = &id
				ct.Name = cat.Name
				ct.ColorHex = cat.ColorHex
			}
			totals = append(totals, ct)
			i = len(totals) - 1
			index[key] = i
		}
		totals[i].Total = totals[i].Total.Add(txn.Amount)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	if len(totals) > TopCategoryCount {
		totals = totals[:TopCategoryCount]
	}

	return domain.MonthSummary{
		MonthStart:    start,
		MonthEnd:      end,
		MonthIncome:   income,
		MonthExpense:  expense,
		TopCategories: totals,
	}
}

// ExpenseVariation is the month-over-month expense change in whole percent.
// A zero previous month yields 0 instead of dividing by zero.
func ExpenseVariation(thisMonth, lastMonth decimal.Decimal) int64 {
	if lastMonth.IsZero() {
		return 0
	}
	return RoundHalfUp(thisMonth.Sub(lastMonth).Div(lastMonth).Mul(hundred))
}
