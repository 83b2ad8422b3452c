// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. Read methods return snapshots in deterministic insertion order
// (created_at, then id) so that the in-memory query pipeline's stable sort
// and tie-breaking stay reproducible.
type TransactionRepository interface {
	// Create inserts a new transaction and assigns its ID.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindAll retrieves the full transaction snapshot.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByDateRange retrieves transactions whose date falls inside the
	// inclusive [start, end] window.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id int64) error
}
