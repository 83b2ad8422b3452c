// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionFrequency represents how often a subscription bills.
type SubscriptionFrequency string

const (
	FrequencyDaily   SubscriptionFrequency = "daily"
	FrequencyWeekly  SubscriptionFrequency = "weekly"
	FrequencyMonthly SubscriptionFrequency = "monthly"
	FrequencyYearly  SubscriptionFrequency = "yearly"
)

// IsValid reports whether the frequency is one of the known values.
func (f SubscriptionFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Subscription represents a recurring charge in the household ledger.
// Subscriptions are never hard-deleted: deactivation sets IsActive=false,
// clears NextPaymentDate and stamps EndDate instead of removing the row.
type Subscription struct {
	ID              int64
	Name            string
	Amount          decimal.Decimal // Per-billing-cycle charge
	CategoryID      *int64
	Frequency       SubscriptionFrequency
	StartDate       time.Time
	NextPaymentDate *time.Time // Nil only when IsActive is false
	EndDate         *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSubscription creates a new Subscription entity. New subscriptions start
// active; the caller computes the first NextPaymentDate.
func NewSubscription(
	name string,
	amount decimal.Decimal,
	categoryID *int64,
	frequency SubscriptionFrequency,
	startDate time.Time,
	nextPaymentDate time.Time,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		Name:            name,
		Amount:          amount,
		CategoryID:      categoryID,
		Frequency:       frequency,
		StartDate:       startDate,
		NextPaymentDate: &nextPaymentDate,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
