// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/kakeibo/backend/internal/application/usecase/summary"
)

// MonthlySummaryResponse represents the monthly summary in API responses.
// Null indicator fields mean the underlying data was absent.
type MonthlySummaryResponse struct {
	Month                string  `json:"month"`
	ExpenseTotal         string  `json:"expense_total"`
	IncomeTotal          string  `json:"income_total"`
	TransactionCount     int     `json:"transaction_count"`
	MonthOverMonthChange *string `json:"month_over_month_change"`
	MostUsedCategory     *string `json:"most_used_category"`
	DailyAverageExpense  *string `json:"daily_average_expense"`
}

// ToMonthlySummaryResponse converts a GetMonthlySummaryOutput to a MonthlySummaryResponse DTO.
func ToMonthlySummaryResponse(output *summary.GetMonthlySummaryOutput) MonthlySummaryResponse {
	response := MonthlySummaryResponse{
		Month:            output.Month,
		ExpenseTotal:     output.ExpenseTotal.String(),
		IncomeTotal:      output.IncomeTotal.String(),
		TransactionCount: output.TransactionCount,
		MostUsedCategory: output.MostUsedCategory,
	}

	if output.MonthOverMonthChange != nil {
		change := output.MonthOverMonthChange.String()
		response.MonthOverMonthChange = &change
	}
	if output.DailyAverageExpense != nil {
		avg := output.DailyAverageExpense.String()
		response.DailyAverageExpense = &avg
	}

	return response
}
