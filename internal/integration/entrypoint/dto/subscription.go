// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kakeibo/backend/internal/application/usecase/subscription"
)

// CreateSubscriptionRequest represents the request body for subscription creation.
type CreateSubscriptionRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	Amount          string  `json:"amount" binding:"required"`
	CategoryID      *int64  `json:"category_id,omitempty"`
	Frequency       string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	StartDate       string  `json:"start_date" binding:"required"`
	NextPaymentDate *string `json:"next_payment_date,omitempty"`
}

// UpdateSubscriptionRequest represents the request body for subscription update.
type UpdateSubscriptionRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount          *string `json:"amount,omitempty"`
	CategoryID      *int64  `json:"category_id,omitempty"`
	ClearCategory   bool    `json:"clear_category,omitempty"`
	Frequency       *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly monthly yearly"`
	NextPaymentDate *string `json:"next_payment_date,omitempty"`
}

// SubscriptionResponse represents a single subscription in API responses.
type SubscriptionResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Amount          string    `json:"amount"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	Frequency       string    `json:"frequency"`
	StartDate       string    `json:"start_date"`
	NextPaymentDate *string   `json:"next_payment_date,omitempty"`
	EndDate         *string   `json:"end_date,omitempty"`
	IsActive        bool      `json:"is_active"`
	AnnualCost      string    `json:"annual_cost"`
	MonthlyCost     string    `json:"monthly_cost"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Data []SubscriptionResponse `json:"data"`
}

// CategoryCostResponse represents the cost contribution of one category.
type CategoryCostResponse struct {
	CategoryID   *int64 `json:"category_id,omitempty"`
	CategoryName string `json:"category_name"`
	MonthlyTotal string `json:"monthly_total"`
	AnnualTotal  string `json:"annual_total"`
}

// SubscriptionCostsResponse represents aggregate subscription cost statistics.
type SubscriptionCostsResponse struct {
	MonthlyTotal string                 `json:"monthly_total"`
	AnnualTotal  string                 `json:"annual_total"`
	ByCategory   []CategoryCostResponse `json:"by_category"`
}

// ToSubscriptionResponse converts a SubscriptionOutput to a SubscriptionResponse DTO.
func ToSubscriptionResponse(sub *subscription.SubscriptionOutput) SubscriptionResponse {
	response := SubscriptionResponse{
		ID:          sub.ID,
		Name:        sub.Name,
		Amount:      sub.Amount.String(),
		CategoryID:  sub.CategoryID,
		Frequency:   string(sub.Frequency),
		StartDate:   sub.StartDate.Format("2006-01-02"),
		IsActive:    sub.IsActive,
		AnnualCost:  sub.AnnualCost.String(),
		MonthlyCost: sub.MonthlyCost.String(),
		CreatedAt:   sub.CreatedAt,
		UpdatedAt:   sub.UpdatedAt,
	}

	if sub.NextPaymentDate != nil {
		next := sub.NextPaymentDate.Format("2006-01-02")
		response.NextPaymentDate = &next
	}
	if sub.EndDate != nil {
		end := sub.EndDate.Format("2006-01-02")
		response.EndDate = &end
	}

	return response
}

// ToSubscriptionListResponse converts subscription outputs to a SubscriptionListResponse DTO.
func ToSubscriptionListResponse(subscriptions []*subscription.SubscriptionOutput) SubscriptionListResponse {
	data := make([]SubscriptionResponse, len(subscriptions))
	for i, sub := range subscriptions {
		data[i] = ToSubscriptionResponse(sub)
	}
	return SubscriptionListResponse{Data: data}
}

// ToSubscriptionCostsResponse converts a GetCostsOutput to a SubscriptionCostsResponse DTO.
func ToSubscriptionCostsResponse(output *subscription.GetCostsOutput) SubscriptionCostsResponse {
	byCategory := make([]CategoryCostResponse, len(output.ByCategory))
	for i, b := range output.ByCategory {
		byCategory[i] = CategoryCostResponse{
			CategoryID:   b.CategoryID,
			CategoryName: b.CategoryName,
			MonthlyTotal: b.MonthlyTotal.String(),
			AnnualTotal:  b.AnnualTotal.String(),
		}
	}

	return SubscriptionCostsResponse{
		MonthlyTotal: output.MonthlyTotal.String(),
		AnnualTotal:  output.AnnualTotal.String(),
		ByCategory:   byCategory,
	}
}
