// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kakeibo/backend/internal/application/usecase/summary"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles dashboard summary endpoints.
type SummaryController struct {
	summaryUseCase *summary.GetMonthlySummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(summaryUseCase *summary.GetMonthlySummaryUseCase) *SummaryController {
	return &SummaryController{
		summaryUseCase: summaryUseCase,
	}
}

// Monthly handles GET /summary requests. The optional month query parameter
// selects a past month; the default is the current one.
func (c *SummaryController) Monthly(ctx *gin.Context) {
	input := summary.GetMonthlySummaryInput{
		Month: ctx.Query("month"),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var txnErr *domainerror.TransactionError
		if errors.As(err, &txnErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: txnErr.Message,
				Code:  string(txnErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}
