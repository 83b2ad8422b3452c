// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kakeibo/backend/internal/application/adapter"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// DeactivateSubscriptionInput represents the input for subscription deactivation.
type DeactivateSubscriptionInput struct {
	SubscriptionID int64
}

// DeactivateSubscriptionOutput represents the output of subscription deactivation.
type DeactivateSubscriptionOutput struct {
	Subscription *SubscriptionOutput
}

// DeactivateSubscriptionUseCase handles subscription deactivation. The row
// is kept: the next payment date is cleared and the end date stamped.
type DeactivateSubscriptionUseCase struct {
	subscriptionRepo adapter.SubscriptionRepository
	clock            adapter.Clock
}

// NewDeactivateSubscriptionUseCase creates a new DeactivateSubscriptionUseCase instance.
func NewDeactivateSubscriptionUseCase(
	subscriptionRepo adapter.SubscriptionRepository,
	clock adapter.Clock,
) *DeactivateSubscriptionUseCase {
	return &DeactivateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		clock:            clock,
	}
}

// Execute performs the subscription deactivation. Deactivating an
// already-inactive subscription is a conflict, not a state change.
func (uc *DeactivateSubscriptionUseCase) Execute(ctx context.Context, input DeactivateSubscriptionInput) (*DeactivateSubscriptionOutput, error) {
	sub, err := uc.subscriptionRepo.FindByID(ctx, input.SubscriptionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSubscriptionNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if !sub.IsActive {
		return nil, domainerror.ErrSubscriptionAlreadyInactive
	}

	today := uc.clock.Now()
	sub.IsActive = false
	sub.NextPaymentDate = nil
	sub.EndDate = &today
	sub.UpdatedAt = time.Now().UTC()

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to deactivate subscription: %w", err)
	}

	return &DeactivateSubscriptionOutput{Subscription: toSubscriptionOutput(sub)}, nil
}
