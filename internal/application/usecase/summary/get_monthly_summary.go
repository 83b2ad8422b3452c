// Package summary contains dashboard summary use cases.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/analytics"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// GetMonthlySummaryInput represents the input for the monthly summary.
type GetMonthlySummaryInput struct {
	// Month in "2006-01" format; empty means the current month.
	Month string
}

// GetMonthlySummaryOutput represents the computed monthly summary.
// Nil pointer fields mean "no data", which is distinct from zero.
type GetMonthlySummaryOutput struct {
	Month                string           `json:"month"`
	ExpenseTotal         decimal.Decimal  `json:"expense_total"`
	IncomeTotal          decimal.Decimal  `json:"income_total"`
	TransactionCount     int              `json:"transaction_count"`
	MonthOverMonthChange *decimal.Decimal `json:"month_over_month_change"`
	MostUsedCategory     *string          `json:"most_used_category"`
	DailyAverageExpense  *decimal.Decimal `json:"daily_average_expense"`
}

// GetMonthlySummaryUseCase computes the dashboard summary for a calendar
// month, comparing it against the previous month. Results are cached per
// month; transaction mutations invalidate the affected months.
type GetMonthlySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
	clock           adapter.Clock
}

// NewGetMonthlySummaryUseCase creates a new GetMonthlySummaryUseCase instance.
func NewGetMonthlySummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
	clock adapter.Clock,
) *GetMonthlySummaryUseCase {
	return &GetMonthlySummaryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
		clock:           clock,
	}
}

// Execute computes (or serves from cache) the monthly summary.
func (uc *GetMonthlySummaryUseCase) Execute(ctx context.Context, input GetMonthlySummaryInput) (*GetMonthlySummaryOutput, error) {
	now := uc.clock.Now()

	month := input.Month
	if month == "" {
		month = now.Format("2006-01")
	}
	firstOfMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if cached := uc.fromCache(ctx, month); cached != nil {
		return cached, nil
	}

	output, err := uc.compute(ctx, month, firstOfMonth, now)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, month, output)
	return output, nil
}

func (uc *GetMonthlySummaryUseCase) compute(ctx context.Context, month string, firstOfMonth, now time.Time) (*GetMonthlySummaryOutput, error) {
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	firstOfPrevious := firstOfMonth.AddDate(0, -1, 0)
	lastOfPrevious := firstOfMonth.AddDate(0, 0, -1)

	current, err := uc.transactionRepo.FindByDateRange(ctx, firstOfMonth, lastOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to load current period: %w", err)
	}
	previous, err := uc.transactionRepo.FindByDateRange(ctx, firstOfPrevious, lastOfPrevious)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous period: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	hasCurrent := len(current) > 0
	hasPrevious := len(previous) > 0

	expenseTotal := analytics.ExpenseTotal(current)
	previousTotal := analytics.ExpenseTotal(previous)

	// For a past month the whole month has elapsed; for the current month
	// only the days up to today count.
	reference := lastOfMonth
	if firstOfMonth.Year() == now.Year() && firstOfMonth.Month() == now.Month() {
		reference = now
	}

	return &GetMonthlySummaryOutput{
		Month:                month,
		ExpenseTotal:         expenseTotal,
		IncomeTotal:          analytics.IncomeTotal(current),
		TransactionCount:     len(current),
		MonthOverMonthChange: analytics.MonthOverMonthChange(expenseTotal, previousTotal, hasCurrent, hasPrevious),
		MostUsedCategory:     analytics.MostUsedCategory(current, categories, hasCurrent),
		DailyAverageExpense:  analytics.DailyAverageExpense(expenseTotal, hasCurrent, reference),
	}, nil
}

// fromCache returns the cached summary, or nil on miss or cache failure.
func (uc *GetMonthlySummaryUseCase) fromCache(ctx context.Context, month string) *GetMonthlySummaryOutput {
	if uc.summaryCache == nil {
		return nil
	}

	payload, found, err := uc.summaryCache.Get(ctx, month)
	if err != nil {
		slog.Warn("Summary cache read failed", "month", month, "error", err)
		return nil
	}
	if !found {
		return nil
	}

	var output GetMonthlySummaryOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		slog.Warn("Summary cache payload corrupt", "month", month, "error", err)
		return nil
	}
	return &output
}

func (uc *GetMonthlySummaryUseCase) toCache(ctx context.Context, month string, output *GetMonthlySummaryOutput) {
	if uc.summaryCache == nil {
		return
	}

	payload, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := uc.summaryCache.Set(ctx, month, payload); err != nil {
		slog.Warn("Summary cache write failed", "month", month, "error", err)
	}
}
