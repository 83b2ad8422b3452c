// Package error defines domain-specific errors for the household ledger.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrCategoryTypeMismatch is returned when the category type does not match the transaction type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrInvalidPage is returned when the requested page number is below 1.
	ErrInvalidPage = errors.New("page must be greater than or equal to 1")

	// ErrInvalidLimit is returned when the requested page size is outside [1, 100].
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")

	// ErrInvalidSortField is returned when sort_by is not a supported field.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidSortOrder is returned when sort_order is neither asc nor desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-010005"
	ErrCodeTxnCategoryTypeMismatch  TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidPage              TransactionErrorCode = "TXN-010008"
	ErrCodeInvalidLimit             TransactionErrorCode = "TXN-010009"
	ErrCodeInvalidSortField         TransactionErrorCode = "TXN-010010"
	ErrCodeInvalidSortOrder         TransactionErrorCode = "TXN-010011"
	ErrCodeInvalidDateRange         TransactionErrorCode = "TXN-010012"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
