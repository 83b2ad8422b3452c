package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAverageExpense returns the average spend per elapsed day of the
// reference month, rounded half away from zero to the nearest currency unit.
// It returns nil when there is no current-period data or when the total is
// not positive.
//
// The reference day counts as a full elapsed day, so for a date-level
// reference the divisor is simply its day of month.
func DailyAverageExpense(currentTotal decimal.Decimal, hasCurrentData bool, referenceDate time.Time) *decimal.Decimal {
	if !hasCurrentData || currentTotal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	daysElapsed := decimal.NewFromInt(int64(referenceDate.Day()))
	avg := currentTotal.Div(daysElapsed).Round(0)
	return &avg
}
