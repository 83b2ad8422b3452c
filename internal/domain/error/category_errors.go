// Package error defines domain-specific errors for the household ledger.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrEmptyCategoryName is returned when the category name is empty.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrDuplicateCategoryName is returned when a category with the same name and type already exists.
	ErrDuplicateCategoryName = errors.New("category with this name already exists")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010002"
	ErrCodeEmptyCategoryName     CategoryErrorCode = "CAT-010003"
	ErrCodeDuplicateCategoryName CategoryErrorCode = "CAT-010004"
)
