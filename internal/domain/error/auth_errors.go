// Package error defines domain-specific errors for the household ledger.
package error

import "errors"

// Auth boundary errors. Account management is handled outside this service;
// only token verification and throttling live at this boundary.
var (
	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when the bearer token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("missing token")
)

// AuthErrorCode defines error codes for auth boundary errors.
type AuthErrorCode string

const (
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)
