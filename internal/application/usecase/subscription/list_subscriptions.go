// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/analytics"
	"github.com/kakeibo/backend/internal/domain/entity"
)

// ListSubscriptionsInput represents the input for listing subscriptions.
type ListSubscriptionsInput struct {
	IncludeInactive bool
}

// SubscriptionOutput represents a single subscription in the output,
// including its projected costs.
type SubscriptionOutput struct {
	ID              int64
	Name            string
	Amount          decimal.Decimal
	CategoryID      *int64
	Frequency       entity.SubscriptionFrequency
	StartDate       time.Time
	NextPaymentDate *time.Time
	EndDate         *time.Time
	IsActive        bool
	AnnualCost      decimal.Decimal
	MonthlyCost     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ListSubscriptionsOutput represents the output of listing subscriptions.
type ListSubscriptionsOutput struct {
	Subscriptions []*SubscriptionOutput
}

// ListSubscriptionsUseCase handles listing subscriptions logic.
type ListSubscriptionsUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subscriptionRepo adapter.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
	}
}

// Execute performs the subscription listing.
func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, input ListSubscriptionsInput) (*ListSubscriptionsOutput, error) {
	subscriptions, err := uc.subscriptionRepo.FindAll(ctx, input.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	output := &ListSubscriptionsOutput{
		Subscriptions: make([]*SubscriptionOutput, len(subscriptions)),
	}
	for i, s := range subscriptions {
		output.Subscriptions[i] = toSubscriptionOutput(s)
	}

	return output, nil
}

func toSubscriptionOutput(s *entity.Subscription) *SubscriptionOutput {
	return &SubscriptionOutput{
		ID:              s.ID,
		Name:            s.Name,
		Amount:          s.Amount,
		CategoryID:      s.CategoryID,
		Frequency:       s.Frequency,
		StartDate:       s.StartDate,
		NextPaymentDate: s.NextPaymentDate,
		EndDate:         s.EndDate,
		IsActive:        s.IsActive,
		AnnualCost:      analytics.AnnualizedCost(s.Amount, s.Frequency),
		MonthlyCost:     analytics.MonthlyEquivalent(s.Amount, s.Frequency).Round(2),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
