// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/domain/query"
)

const (
	// DefaultPageLimit is used when no page size is requested.
	DefaultPageLimit = 20
	// MaxPageLimit is the largest allowed page size.
	MaxPageLimit = 100
)

// ListTransactionsInput represents the input for listing transactions.
// Page and Limit must already be defaulted by the entrypoint; this use case
// owns the validation boundary in front of the query pipeline.
type ListTransactionsInput struct {
	Type       *entity.TransactionType
	CategoryID *int64
	From       *time.Time
	To         *time.Time
	Search     string
	SortBy     query.SortField
	SortOrder  query.SortOrder
	Page       int
	Limit      int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          int64
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  *int64
	Category    *CategoryOutput
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryOutput represents category information in transaction output.
type CategoryOutput struct {
	ID       int64
	Name     string
	Type     entity.CategoryType
	IsActive bool
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasNextPage bool
	HasPrevPage bool
	Limit       int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles listing transactions: it loads the
// repository snapshot and runs it through the in-memory query pipeline.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if err := validateListInput(input); err != nil {
		return nil, err
	}

	records, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filtered := query.Filter(records, query.Criteria{
		Type:       input.Type,
		CategoryID: input.CategoryID,
		From:       input.From,
		To:         input.To,
		Search:     input.Search,
	})
	sorted := query.Sort(filtered, input.SortBy, input.SortOrder)
	page, info := query.Paginate(sorted, input.Page, input.Limit)

	categories, err := uc.categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoriesByID := make(map[int64]*entity.Category, len(categories))
	for _, c := range categories {
		categoriesByID[c.ID] = c
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(page)),
		Pagination: PaginationOutput{
			CurrentPage: info.CurrentPage,
			TotalPages:  info.TotalPages,
			TotalCount:  info.TotalCount,
			HasNextPage: info.HasNextPage,
			HasPrevPage: info.HasPrevPage,
			Limit:       info.Limit,
		},
	}

	for i, txn := range page {
		txnOutput := &TransactionOutput{
			ID:          txn.ID,
			Amount:      txn.Amount,
			Type:        txn.Type,
			CategoryID:  txn.CategoryID,
			Description: txn.Description,
			Date:        txn.Date,
			CreatedAt:   txn.CreatedAt,
			UpdatedAt:   txn.UpdatedAt,
		}

		// A dangling category reference is a valid state; the output just
		// omits the category.
		if txn.CategoryID != nil {
			if cat, ok := categoriesByID[*txn.CategoryID]; ok {
				txnOutput.Category = &CategoryOutput{
					ID:       cat.ID,
					Name:     cat.Name,
					Type:     cat.Type,
					IsActive: cat.IsActive,
				}
			}
		}

		output.Transactions[i] = txnOutput
	}

	return output, nil
}

// validateListInput enforces the listing contract before anything reaches
// the query pipeline, which assumes pre-validated input.
func validateListInput(input ListTransactionsInput) error {
	if input.Page < 1 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPage,
			"page must be greater than or equal to 1",
			domainerror.ErrInvalidPage,
		)
	}
	if input.Limit < 1 || input.Limit > MaxPageLimit {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidLimit,
			fmt.Sprintf("limit must be between 1 and %d", MaxPageLimit),
			domainerror.ErrInvalidLimit,
		)
	}
	if input.SortBy != "" && !input.SortBy.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidSortField,
			"sort_by must be one of transactionDate, amount, createdAt",
			domainerror.ErrInvalidSortField,
		)
	}
	if input.SortOrder != "" && !input.SortOrder.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidSortOrder,
			"sort_order must be asc or desc",
			domainerror.ErrInvalidSortOrder,
		)
	}
	if input.Type != nil && !input.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}
