// Package error defines domain-specific errors for the household ledger.
package error

import "errors"

// Subscription domain errors.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found in the system.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInvalidFrequency is returned when the billing frequency is invalid.
	ErrInvalidFrequency = errors.New("invalid billing frequency")

	// ErrInvalidSubscriptionAmount is returned when the per-cycle amount is negative.
	ErrInvalidSubscriptionAmount = errors.New("invalid subscription amount")

	// ErrEmptySubscriptionName is returned when the subscription name is empty.
	ErrEmptySubscriptionName = errors.New("subscription name cannot be empty")

	// ErrSubscriptionAlreadyActive is returned when activating a subscription that is already active.
	ErrSubscriptionAlreadyActive = errors.New("subscription is already active")

	// ErrSubscriptionAlreadyInactive is returned when deactivating a subscription that is already inactive.
	ErrSubscriptionAlreadyInactive = errors.New("subscription is already inactive")

	// ErrCategoryNotFoundForSubscription is returned when the specified category is not found.
	ErrCategoryNotFoundForSubscription = errors.New("category not found")
)

// SubscriptionErrorCode defines error codes for subscription errors.
type SubscriptionErrorCode string

const (
	ErrCodeSubscriptionNotFound        SubscriptionErrorCode = "SUB-010001"
	ErrCodeInvalidFrequency            SubscriptionErrorCode = "SUB-010002"
	ErrCodeInvalidSubscriptionAmount   SubscriptionErrorCode = "SUB-010003"
	ErrCodeEmptySubscriptionName       SubscriptionErrorCode = "SUB-010004"
	ErrCodeSubscriptionAlreadyActive   SubscriptionErrorCode = "SUB-010005"
	ErrCodeSubscriptionAlreadyInactive SubscriptionErrorCode = "SUB-010006"
	ErrCodeSubCategoryNotFound         SubscriptionErrorCode = "SUB-010007"
	ErrCodeMissingSubscriptionFields   SubscriptionErrorCode = "SUB-010008"
)
