package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

var monthsPerYear = decimal.NewFromInt(12)

// frequencyMultiplier returns the number of billing cycles per year.
func frequencyMultiplier(frequency entity.SubscriptionFrequency) int64 {
	switch frequency {
	case entity.FrequencyDaily:
		return 365
	case entity.FrequencyWeekly:
		return 52
	case entity.FrequencyYearly:
		return 1
	default:
		return 12
	}
}

// AnnualizedCost projects a per-cycle charge to a yearly total via the
// frequency multiplier table (daily 365, weekly 52, monthly 12, yearly 1).
func AnnualizedCost(amount decimal.Decimal, frequency entity.SubscriptionFrequency) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(frequencyMultiplier(frequency)))
}

// MonthlyEquivalent returns the annualized cost spread over twelve months.
// The value is left unrounded; display layers round when rendering.
func MonthlyEquivalent(amount decimal.Decimal, frequency entity.SubscriptionFrequency) decimal.Decimal {
	return AnnualizedCost(amount, frequency).Div(monthsPerYear)
}

// NextBillingDate advances a billing date by one cycle. Monthly and yearly
// cycles use calendar arithmetic with the day of month clamped to the target
// month's length (Jan 31 + 1 month = Feb 28/29), so short months and leap
// years shift correctly.
func NextBillingDate(from time.Time, frequency entity.SubscriptionFrequency) time.Time {
	switch frequency {
	case entity.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case entity.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case entity.FrequencyYearly:
		return addMonthsClamped(from, 12)
	default:
		return addMonthsClamped(from, 1)
	}
}

// addMonthsClamped adds calendar months, clamping the day of month instead
// of letting overflow normalize into the following month.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)

	day := t.Day()
	if last := firstOfTarget.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// SubscriptionCosts holds aggregate cost totals across subscriptions.
type SubscriptionCosts struct {
	MonthlyTotal decimal.Decimal
	AnnualTotal  decimal.Decimal
}

// TotalCosts sums monthly-equivalent and annualized costs across the active
// subscriptions; inactive subscriptions contribute zero.
func TotalCosts(subscriptions []*entity.Subscription) SubscriptionCosts {
	costs := SubscriptionCosts{
		MonthlyTotal: decimal.Zero,
		AnnualTotal:  decimal.Zero,
	}

	for _, s := range subscriptions {
		if !s.IsActive {
			continue
		}
		costs.MonthlyTotal = costs.MonthlyTotal.Add(MonthlyEquivalent(s.Amount, s.Frequency))
		costs.AnnualTotal = costs.AnnualTotal.Add(AnnualizedCost(s.Amount, s.Frequency))
	}

	return costs
}

// CategoryCost holds aggregate cost totals for one category bucket.
type CategoryCost struct {
	CategoryID   *int64 // nil is the uncategorized bucket
	MonthlyTotal decimal.Decimal
	AnnualTotal  decimal.Decimal
}

// CostsByCategory breaks down active-subscription costs per category, in
// first-encounter order of the input list.
func CostsByCategory(subscriptions []*entity.Subscription) []CategoryCost {
	var breakdown []CategoryCost

	for _, s := range subscriptions {
		if !s.IsActive {
			continue
		}

		monthly := MonthlyEquivalent(s.Amount, s.Frequency)
		annual := AnnualizedCost(s.Amount, s.Frequency)

		found := false
		for i := range breakdown {
			if sameBucket(breakdown[i].CategoryID, s.CategoryID) {
				breakdown[i].MonthlyTotal = breakdown[i].MonthlyTotal.Add(monthly)
				breakdown[i].AnnualTotal = breakdown[i].AnnualTotal.Add(annual)
				found = true
				break
			}
		}
		if !found {
			breakdown = append(breakdown, CategoryCost{
				CategoryID:   s.CategoryID,
				MonthlyTotal: monthly,
				AnnualTotal:  annual,
			})
		}
	}

	return breakdown
}
