package accounting

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// normalizedDate builds a date the way time.Date does, letting an
// out-of-range day spill into the following month (Feb 30 -> Mar 1 or 2).
// Closing days past the end of a short month rely on this and are not clamped.
func normalizedDate(year int, month time.Month, day int) civil.Date {
	return civil.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ComputeBillingCycle returns the invoice window containing today for a card
// that closes on closingDay.
//
// On or before the closing day the cycle runs from the day after the
// previous month's closing through this month's closing; after it, the cycle
// runs from the day after this month's closing through next month's.
func ComputeBillingCycle(today civil.Date, closingDay int) (domain.BillingCycle, error) {
	if closingDay < 1 || closingDay > 31 {
		return domain.BillingCycle{}, apperrors.NewValidationFailedError(fmt.Sprintf("closing day must be between 1 and 31 (got %d)", closingDay))
	}

	var start, end civil.Date
	if today.Day <= closingDay {
		start = normalizedDate(today.Year, today.Month-1, closingDay+1)
		end = normalizedDate(today.Year, today.Month, closingDay)
	} else {
		start = normalizedDate(today.Year, today.Month, closingDay+1)
		end = normalizedDate(today.Year, today.Month+1, closingDay)
	}

	return domain.BillingCycle{Start: start, End: end, DueDate: end}, nil
}

// InCycle reports whether d falls inside the cycle, both ends inclusive.
func InCycle(cycle domain.BillingCycle, d civil.Date) bool {
	return !d.Before(cycle.Start) && !d.After(cycle.End)
}

// SummarizeInvoice sums the expense transactions dated inside cycle and
// derives usage against limit.
func SummarizeInvoice(cycle domain.BillingCycle, limit decimal.Decimal, txns []domain.Transaction) domain.InvoiceSummary {
	invoice := decimal.Zero
	for _, txn := range txns {
		if txn.Type != domain.Expense || !InCycle(cycle, txn.Date) {
			continue
		}
		invoice = invoice.Add(txn.Amount)
	}

	return domain.InvoiceSummary{
		BillingCycle:   cycle,
		CurrentInvoice: invoice,
		UsagePercent:   UsagePercent(invoice, limit),
		Available:      limit.Sub(invoice),
	}
}

// UsagePercent is round(invoice / limit * 100) clamped to [0, 100].
// A non-positive limit yields 0.
func UsagePercent(invoice, limit decimal.Decimal) int64 {
	if !limit.IsPositive() {
		return 0
	}
	pct := RoundHalfUp(invoice.Div(limit).Mul(hundred))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// RoundHalfUp rounds to the nearest integer with halves going toward
// positive infinity (-2.5 -> -2, 2.5 -> 3).
func RoundHalfUp(d decimal.Decimal) int64 {
	return d.Add(decimal.NewFromFloat(0.5)).Floor().IntPart()
}
