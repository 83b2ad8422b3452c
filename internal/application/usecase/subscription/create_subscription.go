// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/analytics"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// CreateSubscriptionInput represents the input for subscription creation.
// NextPaymentDate is optional; when absent it is projected one cycle ahead
// of StartDate.
type CreateSubscriptionInput struct {
	Name            string
	Amount          decimal.Decimal
	CategoryID      *int64
	Frequency       entity.SubscriptionFrequency
	StartDate       time.Time
	NextPaymentDate *time.Time
}

// CreateSubscriptionOutput represents the output of subscription creation.
type CreateSubscriptionOutput struct {
	Subscription *SubscriptionOutput
}

// CreateSubscriptionUseCase handles subscription creation logic.
type CreateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	categoryRepo     adapter.CategoryRepository
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		categoryRepo:     categoryRepo,
	}
}

// Execute performs the subscription creation.
func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, input CreateSubscriptionInput) (*CreateSubscriptionOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.ErrEmptySubscriptionName
	}
	if !input.Frequency.IsValid() {
		return nil, domainerror.ErrInvalidFrequency
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.ErrInvalidSubscriptionAmount
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.ErrCategoryNotFoundForSubscription
		}
	}

	nextPayment := analytics.NextBillingDate(input.StartDate, input.Frequency)
	if input.NextPaymentDate != nil {
		nextPayment = *input.NextPaymentDate
	}

	sub := entity.NewSubscription(name, input.Amount, input.CategoryID, input.Frequency, input.StartDate, nextPayment)
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CreateSubscriptionOutput{Subscription: toSubscriptionOutput(sub)}, nil
}
