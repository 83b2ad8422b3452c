// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/analytics"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// ActivateSubscriptionInput represents the input for subscription activation.
type ActivateSubscriptionInput struct {
	SubscriptionID int64
}

// ActivateSubscriptionOutput represents the output of subscription activation.
type ActivateSubscriptionOutput struct {
	Subscription *SubscriptionOutput
}

// ActivateSubscriptionUseCase handles subscription activation: it recomputes
// the next payment date from today via the billing-cycle advancement rule
// and clears the end date.
type ActivateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	clock            adapter.Clock
}

// NewActivateSubscriptionUseCase creates a new ActivateSubscriptionUseCase instance.
func NewActivateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	clock adapter.Clock,
) *ActivateSubscriptionUseCase {
	return &ActivateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
	}
}

// Execute performs the subscription activation. Activating an already-active
// subscription is a conflict, not a state change.
func (uc *ActivateSubscriptionUseCase) Execute(ctx context.Context, input ActivateSubscriptionInput) (*ActivateSubscriptionOutput, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if sub.IsActive {
		return nil, domainerror.ErrSubscriptionAlreadyActive
	}

	next := analytics.NextBillingDate(uc.clock.Now(), sub.Frequency)
	sub.IsActive = true
	sub.NextPaymentDate = &next
	sub.EndDate = nil
	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	return &ActivateSubscriptionOutput{Subscription: toSubscriptionOutput(sub)}, nil
}
