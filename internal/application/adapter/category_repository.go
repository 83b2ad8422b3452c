// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create inserts a new category and assigns its ID.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID, active or not.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// FindAll retrieves categories in insertion order. Inactive categories
	// are excluded unless includeInactive is set.
	FindAll(ctx context.Context, includeInactive bool) ([]*entity.Category, error)

	// ExistsByNameAndType checks whether an active category with the given
	// name and type already exists.
	ExistsByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (bool, error)

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error
}
