// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/persistence/model"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create creates a new subscription in the database.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	result := r.db.WithContext(ctx).Create(subscriptionModel)
	if result.Error != nil {
		return result.Error
	}
	subscription.ID = subscriptionModel.ID
	return nil
}

// FindByID retrieves a subscription by its ID, active or not.
func (r *subscriptionRepository) FindByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	var subscriptionModel model.SubscriptionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&subscriptionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, result.Error
	}
	return subscriptionModel.ToEntity(), nil
}

// FindAll retrieves subscriptions in insertion order, excluding inactive
// ones unless includeInactive is set.
func (r *subscriptionRepository) FindAll(ctx context.Context, includeInactive bool) ([]*entity.Subscription, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var subscriptionModels []model.SubscriptionModel
	result := query.Find(&subscriptionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i, sm := range subscriptionModels {
		subscriptions[i] = sm.ToEntity()
	}
	return subscriptions, nil
}

// Update updates an existing subscription in the database. Nullable date
// columns are written explicitly so clearing them persists.
func (r *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	result := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", subscriptionModel.ID).
		Select("Name", "Amount", "CategoryID", "Frequency", "StartDate", "NextPaymentDate", "EndDate", "IsActive", "UpdatedAt").
		Updates(subscriptionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSubscriptionNotFound
	}
	return nil
}
