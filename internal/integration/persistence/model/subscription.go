// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID      *int64          `gorm:"index"`
	Frequency       string          `gorm:"type:varchar(10);not null"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	NextPaymentDate *time.Time      `gorm:"type:date"`
	EndDate         *time.Time      `gorm:"type:date"`
	IsActive        bool            `gorm:"not null;default:true;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:              m.ID,
		Name:            m.Name,
		Amount:          m.Amount,
		CategoryID:      m.CategoryID,
		Frequency:       entity.SubscriptionFrequency(m.Frequency),
		StartDate:       m.StartDate,
		NextPaymentDate: m.NextPaymentDate,
		EndDate:         m.EndDate,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain Subscription entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:              subscription.ID,
		Name:            subscription.Name,
		Amount:          subscription.Amount,
		CategoryID:      subscription.CategoryID,
		Frequency:       string(subscription.Frequency),
		StartDate:       subscription.StartDate,
		NextPaymentDate: subscription.NextPaymentDate,
		EndDate:         subscription.EndDate,
		IsActive:        subscription.IsActive,
		CreatedAt:       subscription.CreatedAt,
		UpdatedAt:       subscription.UpdatedAt,
	}
}
