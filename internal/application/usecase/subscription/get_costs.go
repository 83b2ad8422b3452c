// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/analytics"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// GetCostsOutput represents the aggregate cost statistics across active
// subscriptions. Inactive subscriptions contribute zero.
type GetCostsOutput struct {
	MonthlyTotal decimal.Decimal
	AnnualTotal  decimal.Decimal
	ByCategory   []*CategoryCostOutput
}

// CategoryCostOutput represents the cost contribution of one category.
type CategoryCostOutput struct {
	CategoryID   *int64
	CategoryName string
	MonthlyTotal decimal.Decimal
	AnnualTotal  decimal.Decimal
}

// GetCostsUseCase computes aggregate subscription cost statistics.
type GetCostsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	categoryRepo     adapter.CategoryRepository
}

// NewGetCostsUseCase creates a new GetCostsUseCase instance.
func NewGetCostsUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	categoryRepo adapter.CategoryRepository,
) *GetCostsUseCase {
	return &GetCostsUseCase{
		subscriptionRepo: subscriptionRepo,
		categoryRepo:     categoryRepo,
	}
}

// Execute computes the cost statistics.
func (uc *GetCostsUseCase) Execute(ctx context.Context) (*GetCostsOutput, error) {
	subscriptions, err := uc.subscriptionRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	totals := analytics.TotalCosts(subscriptions)
	breakdown := analytics.CostsByCategory(subscriptions)

	output := &GetCostsOutput{
		MonthlyTotal: totals.MonthlyTotal.Round(2),
		AnnualTotal:  totals.AnnualTotal,
		ByCategory:   make([]*CategoryCostOutput, len(breakdown)),
	}

	for i, b := range breakdown {
		output.ByCategory[i] = &CategoryCostOutput{
			CategoryID:   b.CategoryID,
			CategoryName: resolveName(b.CategoryID, categories),
			MonthlyTotal: b.MonthlyTotal.Round(2),
			AnnualTotal:  b.AnnualTotal,
		}
	}

	return output, nil
}

func resolveName(categoryID *int64, categories []*entity.Category) string {
	if categoryID == nil {
		return analytics.UncategorizedLabel
	}
	for _, c := range categories {
		if c.ID == *categoryID {
			return c.Name
		}
	}
	return analytics.UnknownCategoryLabel
}
