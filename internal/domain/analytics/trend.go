// Package analytics computes derived metrics from transaction and
// subscription snapshots: period totals, month-over-month change, category
// usage, daily averages and subscription cost projections.
//
// All functions are pure and never fail for missing-data conditions; "no
// data" is reported as a nil result, distinct from a legitimate zero value.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// ExpenseTotal sums the amounts of all expense transactions. An empty list
// yields zero.
func ExpenseTotal(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// IncomeTotal sums the amounts of all income transactions.
func IncomeTotal(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeIncome {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// MonthOverMonthChange returns the percentage change of currentTotal against
// previousTotal, or nil when either period has no transactions at all.
//
// A period that existed but spent nothing is a real zero, not missing data:
// the change is 100 when the current period spent anything, 0 otherwise.
// The result is unclamped and can exceed 100 or be negative.
func MonthOverMonthChange(currentTotal, previousTotal decimal.Decimal, hasCurrent, hasPrevious bool) *decimal.Decimal {
	if !hasCurrent || !hasPrevious {
		return nil
	}

	if previousTotal.IsZero() {
		change := decimal.Zero
		if currentTotal.GreaterThan(decimal.Zero) {
			change = hundred
		}
		return &change
	}

	change := currentTotal.Sub(previousTotal).Div(previousTotal).Mul(hundred)
	return &change
}
