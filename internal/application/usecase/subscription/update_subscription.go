// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// UpdateSubscriptionInput represents the input for subscription update.
// Nil fields are left unchanged.
type UpdateSubscriptionInput struct {
	SubscriptionID  int64
	Name            *string
	Amount          *decimal.Decimal
	CategoryID      *int64
	ClearCategory   bool
	Frequency       *entity.SubscriptionFrequency
	NextPaymentDate *time.Time
}

// UpdateSubscriptionOutput represents the output of subscription update.
type UpdateSubscriptionOutput struct {
	Subscription *SubscriptionOutput
}

// UpdateSubscriptionUseCase handles subscription update logic.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	categoryRepo     adapter.CategoryRepository
}

// NewUpdateSubscriptionUseCase creates a new UpdateSubscriptionUseCase instance.
func NewUpdateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		categoryRepo:     categoryRepo,
	}
}

// Execute performs the subscription update.
func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, input UpdateSubscriptionInput) (*UpdateSubscriptionOutput, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.ErrEmptySubscriptionName
		}
		sub.Name = name
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.ErrInvalidSubscriptionAmount
		}
		sub.Amount = *input.Amount
	}
	if input.Frequency != nil {
		if !input.Frequency.IsValid() {
			return nil, domainerror.ErrInvalidFrequency
		}
		sub.Frequency = *input.Frequency
	}
	if input.NextPaymentDate != nil && sub.IsActive {
		sub.NextPaymentDate = input.NextPaymentDate
	}

	switch {
	case input.ClearCategory:
		sub.CategoryID = nil
	case input.CategoryID != nil:
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.ErrCategoryNotFoundForSubscription
		}
		sub.CategoryID = input.CategoryID
	}

	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return &UpdateSubscriptionOutput{Subscription: toSubscriptionOutput(sub)}, nil
}
