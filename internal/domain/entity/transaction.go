// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a financial transaction in the household ledger.
// Amount is always non-negative; Type carries the direction.
type Transaction struct {
	ID          int64
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  *int64 // Optional, can be uncategorized
	Description string
	Date        time.Time // Economically relevant date, not record creation time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The ID is assigned by the
// persistence layer on insert.
func NewTransaction(
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *int64,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its resolved category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
