// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged; ClearCategory removes the category link.
type UpdateTransactionInput struct {
	TransactionID int64
	Date          *time.Time
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *int64
	ClearCategory bool
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	oldDate := txn.Date

	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.Description != nil {
		if len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionFields,
				fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
				nil,
			)
		}
		txn.Description = *input.Description
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must not be negative",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		txn.Amount = *input.Amount
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		txn.Type = *input.Type
	}

	switch {
	case input.ClearCategory:
		txn.CategoryID = nil
	case input.CategoryID != nil:
		cat, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		if string(cat.Type) != string(txn.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryTypeMismatch,
				"category type does not match transaction type",
				domainerror.ErrCategoryTypeMismatch,
			)
		}
		txn.CategoryID = input.CategoryID
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	// A moved date affects two months' summaries.
	invalidateSummaryMonths(ctx, uc.summaryCache, oldDate, txn.Date)

	return &UpdateTransactionOutput{
		Transaction: &TransactionOutput{
			ID:          txn.ID,
			Amount:      txn.Amount,
			Type:        txn.Type,
			CategoryID:  txn.CategoryID,
			Description: txn.Description,
			Date:        txn.Date,
			CreatedAt:   txn.CreatedAt,
			UpdatedAt:   txn.UpdatedAt,
		},
	}, nil
}
