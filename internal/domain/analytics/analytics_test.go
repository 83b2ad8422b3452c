package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

func date(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func catID(id int64) *int64 {
	return &id
}

func expense(amount int64, categoryID *int64, txnDate string) *entity.Transaction {
	return &entity.Transaction{
		Amount:     decimal.NewFromInt(amount),
		Type:       entity.TransactionTypeExpense,
		CategoryID: categoryID,
		Date:       date(txnDate),
	}
}

func income(amount int64, txnDate string) *entity.Transaction {
	return &entity.Transaction{
		Amount: decimal.NewFromInt(amount),
		Type:   entity.TransactionTypeIncome,
		Date:   date(txnDate),
	}
}

func TestExpenseTotal(t *testing.T) {
	t.Run("sums only expenses", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(1000, catID(1), "2024-06-01"),
			income(50000, "2024-06-05"),
			expense(2500, nil, "2024-06-10"),
		}
		if got := ExpenseTotal(txns); !got.Equal(decimal.NewFromInt(3500)) {
			t.Errorf("expected 3500, got %s", got)
		}
	})

	t.Run("empty list yields zero", func(t *testing.T) {
		if got := ExpenseTotal(nil); !got.IsZero() {
			t.Errorf("expected 0, got %s", got)
		}
	})
}

func TestMonthOverMonthChange(t *testing.T) {
	dec := decimal.NewFromInt

	tests := []struct {
		name        string
		current     decimal.Decimal
		previous    decimal.Decimal
		hasCurrent  bool
		hasPrevious bool
		want        *decimal.Decimal
	}{
		{"increase", dec(12000), dec(10000), true, true, ptr(dec(20))},
		{"decrease", dec(8000), dec(10000), true, true, ptr(dec(-20))},
		{"previous existed but spent nothing", dec(5000), dec(0), true, true, ptr(dec(100))},
		{"both periods spent nothing", dec(0), dec(0), true, true, ptr(dec(0))},
		{"no current data", dec(5000), dec(10000), false, true, nil},
		{"no previous data", dec(5000), dec(10000), true, false, nil},
		{"more than doubled", dec(30000), dec(10000), true, true, ptr(dec(200))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthOverMonthChange(tt.current, tt.previous, tt.hasCurrent, tt.hasPrevious)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %s", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got nil", tt.want)
			}
			if !got.Equal(*tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestMostUsedCategory(t *testing.T) {
	categories := []*entity.Category{
		{ID: 1, Name: "Food", Type: entity.CategoryTypeExpense, IsActive: true},
		{ID: 2, Name: "Utilities", Type: entity.CategoryTypeExpense, IsActive: true},
	}

	t.Run("nil when no current data", func(t *testing.T) {
		txns := []*entity.Transaction{expense(100, catID(1), "2024-06-01")}
		if got := MostUsedCategory(txns, categories, false); got != nil {
			t.Errorf("expected nil, got %q", *got)
		}
	})

	t.Run("nil when no expense transactions", func(t *testing.T) {
		txns := []*entity.Transaction{income(50000, "2024-06-01")}
		if got := MostUsedCategory(txns, categories, true); got != nil {
			t.Errorf("expected nil, got %q", *got)
		}
	})

	t.Run("highest count wins", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(100, catID(1), "2024-06-01"),
			expense(200, catID(1), "2024-06-02"),
			expense(300, catID(2), "2024-06-03"),
		}
		got := MostUsedCategory(txns, categories, true)
		if got == nil || *got != "Food" {
			t.Errorf("expected Food, got %v", got)
		}
	})

	t.Run("first encountered wins ties", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(100, catID(2), "2024-06-01"),
			expense(200, catID(1), "2024-06-02"),
		}
		got := MostUsedCategory(txns, categories, true)
		if got == nil || *got != "Utilities" {
			t.Errorf("expected Utilities, got %v", got)
		}
	})

	t.Run("income does not contribute to counts", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(100, catID(2), "2024-06-01"),
			income(50000, "2024-06-02"),
			income(50000, "2024-06-03"),
		}
		got := MostUsedCategory(txns, categories, true)
		if got == nil || *got != "Utilities" {
			t.Errorf("expected Utilities, got %v", got)
		}
	})

	t.Run("uncategorized is its own bucket", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(100, nil, "2024-06-01"),
			expense(200, nil, "2024-06-02"),
			expense(300, catID(1), "2024-06-03"),
		}
		got := MostUsedCategory(txns, categories, true)
		if got == nil || *got != UncategorizedLabel {
			t.Errorf("expected %q, got %v", UncategorizedLabel, got)
		}
	})

	t.Run("dangling reference resolves to fallback label", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(100, catID(42), "2024-06-01"),
			expense(200, catID(42), "2024-06-02"),
		}
		got := MostUsedCategory(txns, categories, true)
		if got == nil || *got != UnknownCategoryLabel {
			t.Errorf("expected %q, got %v", UnknownCategoryLabel, got)
		}
	})
}

func TestDailyAverageExpense(t *testing.T) {
	t.Run("rounds half away from zero", func(t *testing.T) {
		got := DailyAverageExpense(decimal.NewFromInt(3500), true, date("2024-06-15"))
		if got == nil || !got.Equal(decimal.NewFromInt(233)) {
			t.Errorf("expected 233, got %v", got)
		}
	})

	t.Run("reference day counts as a full day", func(t *testing.T) {
		got := DailyAverageExpense(decimal.NewFromInt(3500), true, date("2024-06-03"))
		if got == nil || !got.Equal(decimal.NewFromInt(1167)) {
			t.Errorf("expected 1167, got %v", got)
		}
	})

	t.Run("first of month divides by one", func(t *testing.T) {
		got := DailyAverageExpense(decimal.NewFromInt(980), true, date("2024-06-01"))
		if got == nil || !got.Equal(decimal.NewFromInt(980)) {
			t.Errorf("expected 980, got %v", got)
		}
	})

	t.Run("nil when total is zero", func(t *testing.T) {
		if got := DailyAverageExpense(decimal.Zero, true, date("2024-06-15")); got != nil {
			t.Errorf("expected nil, got %s", got)
		}
	})

	t.Run("nil when no current data", func(t *testing.T) {
		if got := DailyAverageExpense(decimal.NewFromInt(3500), false, date("2024-06-15")); got != nil {
			t.Errorf("expected nil, got %s", got)
		}
	})
}

func TestAnnualizedCost(t *testing.T) {
	dec := decimal.NewFromInt

	tests := []struct {
		name      string
		amount    decimal.Decimal
		frequency entity.SubscriptionFrequency
		want      decimal.Decimal
	}{
		{"monthly", dec(1000), entity.FrequencyMonthly, dec(12000)},
		{"yearly", dec(1000), entity.FrequencyYearly, dec(1000)},
		{"weekly", dec(500), entity.FrequencyWeekly, dec(26000)},
		{"daily", dec(100), entity.FrequencyDaily, dec(36500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnnualizedCost(tt.amount, tt.frequency); !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("monthly equivalent of yearly subscription", func(t *testing.T) {
		got := MonthlyEquivalent(dec(72000), entity.FrequencyYearly)
		if !got.Equal(dec(6000)) {
			t.Errorf("expected 6000, got %s", got)
		}
	})
}

func TestNextBillingDate(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		frequency entity.SubscriptionFrequency
		want      string
	}{
		{"daily adds one day", "2024-06-15", entity.FrequencyDaily, "2024-06-16"},
		{"weekly adds seven days", "2024-06-28", entity.FrequencyWeekly, "2024-07-05"},
		{"monthly adds one calendar month", "2024-06-15", entity.FrequencyMonthly, "2024-07-15"},
		{"monthly clamps at short months", "2024-01-31", entity.FrequencyMonthly, "2024-02-29"},
		{"monthly clamps in non-leap years", "2025-01-31", entity.FrequencyMonthly, "2025-02-28"},
		{"monthly across year boundary", "2024-12-15", entity.FrequencyMonthly, "2025-01-15"},
		{"yearly adds one calendar year", "2024-06-15", entity.FrequencyYearly, "2025-06-15"},
		{"yearly clamps leap day", "2024-02-29", entity.FrequencyYearly, "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextBillingDate(date(tt.from), tt.frequency)
			if !got.Equal(date(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestTotalCosts(t *testing.T) {
	dec := decimal.NewFromInt

	subs := []*entity.Subscription{
		{ID: 1, Amount: dec(1000), Frequency: entity.FrequencyMonthly, CategoryID: catID(1), IsActive: true},
		{ID: 2, Amount: dec(72000), Frequency: entity.FrequencyYearly, CategoryID: catID(1), IsActive: true},
		{ID: 3, Amount: dec(9999), Frequency: entity.FrequencyMonthly, CategoryID: catID(2), IsActive: false},
	}

	t.Run("inactive subscriptions contribute zero", func(t *testing.T) {
		costs := TotalCosts(subs)
		if !costs.AnnualTotal.Equal(dec(84000)) {
			t.Errorf("expected annual 84000, got %s", costs.AnnualTotal)
		}
		if !costs.MonthlyTotal.Equal(dec(7000)) {
			t.Errorf("expected monthly 7000, got %s", costs.MonthlyTotal)
		}
	})

	t.Run("breakdown groups by category in first-encounter order", func(t *testing.T) {
		breakdown := CostsByCategory(subs)
		if len(breakdown) != 1 {
			t.Fatalf("expected one active bucket, got %d", len(breakdown))
		}
		if breakdown[0].CategoryID == nil || *breakdown[0].CategoryID != 1 {
			t.Errorf("unexpected bucket %+v", breakdown[0])
		}
		if !breakdown[0].AnnualTotal.Equal(dec(84000)) {
			t.Errorf("expected 84000, got %s", breakdown[0].AnnualTotal)
		}
	})
}

// End-to-end scenario: one month of spending, compared against the previous
// month, evaluated as the dashboard would.
func TestMonthlySummaryScenario(t *testing.T) {
	categories := []*entity.Category{
		{ID: 1, Name: "Food", Type: entity.CategoryTypeExpense, IsActive: true},
		{ID: 2, Name: "Utilities", Type: entity.CategoryTypeExpense, IsActive: true},
	}
	current := []*entity.Transaction{
		expense(1000, catID(1), "2024-06-01"),
		expense(2000, catID(1), "2024-06-02"),
		expense(500, catID(2), "2024-06-03"),
	}
	previousTotal := decimal.NewFromInt(2500)

	total := ExpenseTotal(current)
	if !total.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected total 3500, got %s", total)
	}

	change := MonthOverMonthChange(total, previousTotal, true, true)
	if change == nil || !change.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected +40%%, got %v", change)
	}

	mostUsed := MostUsedCategory(current, categories, true)
	if mostUsed == nil || *mostUsed != "Food" {
		t.Errorf("expected Food, got %v", mostUsed)
	}

	avg := DailyAverageExpense(total, true, date("2024-06-03"))
	if avg == nil || !avg.Equal(decimal.NewFromInt(1167)) {
		t.Errorf("expected 1167, got %v", avg)
	}
}
