// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence
// operations. Subscriptions are never hard-deleted, so there is no Delete.
type SubscriptionRepository interface {
	// Create inserts a new subscription and assigns its ID.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its ID, active or not.
	FindByID(ctx context.Context, id int64) (*entity.Subscription, error)

	// FindAll retrieves subscriptions in insertion order. Inactive
	// subscriptions are excluded unless includeInactive is set.
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.Subscription, error)

	// Update persists changes to an existing subscription.
	Update(ctx context.Context, subscription *entity.Subscription) error
}
