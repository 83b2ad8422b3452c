// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// CategoryType represents the type of category (expense or income).
// A category belongs to exactly one transaction type.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category represents a transaction category in the household ledger.
// Inactive categories are excluded from default listings but remain
// resolvable by ID for historical records.
type Category struct {
	ID        int64
	Name      string
	Type      CategoryType
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. New categories start active.
func NewCategory(name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		Name:      name,
		Type:      categoryType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
