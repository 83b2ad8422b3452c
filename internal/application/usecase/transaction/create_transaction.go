// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  *int64
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	cat, err := uc.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(input.Date, input.Description, input.Amount, input.Type, input.CategoryID)
	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateSummaryMonths(ctx, uc.summaryCache, input.Date)

	output := &TransactionOutput{
		ID:          txn.ID,
		Amount:      txn.Amount,
		Type:        txn.Type,
		CategoryID:  txn.CategoryID,
		Description: txn.Description,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if cat != nil {
		output.Category = &CategoryOutput{
			ID:       cat.ID,
			Name:     cat.Name,
			Type:     cat.Type,
			IsActive: cat.IsActive,
		}
	}

	return &CreateTransactionOutput{Transaction: output}, nil
}

// validate checks the input and resolves the referenced category, if any.
func (uc *CreateTransactionUseCase) validate(ctx context.Context, input CreateTransactionInput) (*entity.Category, error) {
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// Negative amounts are a caller bug, not a domain state.
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.CategoryID == nil {
		return nil, nil
	}

	cat, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}
	if string(cat.Type) != string(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryTypeMismatch,
			"category type does not match transaction type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return cat, nil
}

// invalidateSummaryMonths drops cached monthly summaries affected by a
// mutation. The following month is dropped too: its summary carries a
// month-over-month change computed against the mutated month. Cache failures
// are logged and swallowed: the cache is an optimization, not a source of
// truth.
func invalidateSummaryMonths(ctx context.Context, cache adapter.SummaryCache, dates ...time.Time) {
	if cache == nil {
		return
	}

	seen := map[string]bool{}
	var months []string
	for _, d := range dates {
		// First-of-month anchor so the step never skips a short month.
		anchor := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		for _, affected := range []time.Time{anchor, anchor.AddDate(0, 1, 0)} {
			month := affected.Format("2006-01")
			if !seen[month] {
				seen[month] = true
				months = append(months, month)
			}
		}
	}

	if err := cache.Invalidate(ctx, months...); err != nil {
		slog.Warn("Failed to invalidate summary cache", "months", months, "error", err)
	}
}
