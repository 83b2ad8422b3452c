// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kakeibo/backend/internal/application/usecase/subscription"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/entrypoint/dto"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	listUseCase       *subscription.ListSubscriptionsUseCase
	createUseCase     *subscription.CreateSubscriptionUseCase
	updateUseCase     *subscription.UpdateSubscriptionUseCase
	activateUseCase   *subscription.ActivateSubscriptionUseCase
	deactivateUseCase *subscription.DeactivateSubscriptionUseCase
	costsUseCase      *subscription.GetCostsUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	listUseCase *subscription.ListSubscriptionsUseCase,
	createUseCase *subscription.CreateSubscriptionUseCase,
	updateUseCase *subscription.UpdateSubscriptionUseCase,
	activateUseCase *subscription.ActivateSubscriptionUseCase,
	deactivateUseCase *subscription.DeactivateSubscriptionUseCase,
	costsUseCase *subscription.GetCostsUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		activateUseCase:   activateUseCase,
		deactivateUseCase: deactivateUseCase,
		costsUseCase:      costsUseCase,
	}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	input := subscription.ListSubscriptionsInput{
		IncludeInactive: ctx.Query("include_inactive") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve subscriptions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output.Subscriptions))
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSubscriptionFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingSubscriptionFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount must be a decimal number",
			Code:  string(domainerror.ErrCodeInvalidSubscriptionAmount),
		})
		return
	}

	input := subscription.CreateSubscriptionInput{
		Name:       req.Name,
		Amount:     amount,
		CategoryID: req.CategoryID,
		Frequency:  entity.SubscriptionFrequency(req.Frequency),
		StartDate:  startDate,
	}

	if req.NextPaymentDate != nil {
		next, err := time.Parse("2006-01-02", *req.NextPaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "next_payment_date must be in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeMissingSubscriptionFields),
			})
			return
		}
		input.NextPaymentDate = &next
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Update handles PATCH /subscriptions/:id requests.
func (c *SubscriptionController) Update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := subscription.UpdateSubscriptionInput{
		SubscriptionID: id,
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		ClearCategory:  req.ClearCategory,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "amount must be a decimal number",
				Code:  string(domainerror.ErrCodeInvalidSubscriptionAmount),
			})
			return
		}
		input.Amount = &amount
	}
	if req.Frequency != nil {
		frequency := entity.SubscriptionFrequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.NextPaymentDate != nil {
		next, err := time.Parse("2006-01-02", *req.NextPaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "next_payment_date must be in YYYY-MM-DD format",
			})
			return
		}
		input.NextPaymentDate = &next
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Activate handles POST /subscriptions/:id/activate requests.
func (c *SubscriptionController) Activate(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.activateUseCase.Execute(ctx.Request.Context(), subscription.ActivateSubscriptionInput{SubscriptionID: id})
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Deactivate handles POST /subscriptions/:id/deactivate requests.
func (c *SubscriptionController) Deactivate(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	output, err := c.deactivateUseCase.Execute(ctx.Request.Context(), subscription.DeactivateSubscriptionInput{SubscriptionID: id})
	if err != nil {
		c.handleSubscriptionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Costs handles GET /subscriptions/costs requests.
func (c *SubscriptionController) Costs(ctx *gin.Context) {
	output, err := c.costsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute subscription costs",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionCostsResponse(output))
}

func (c *SubscriptionController) parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription ID",
		})
		return 0, false
	}
	return id, true
}

// handleSubscriptionError handles subscription errors and returns appropriate HTTP responses.
func (c *SubscriptionController) handleSubscriptionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrSubscriptionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Subscription not found",
			Code:  string(domainerror.ErrCodeSubscriptionNotFound),
		})
	case errors.Is(err, domainerror.ErrSubscriptionAlreadyActive):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Subscription is already active",
			Code:  string(domainerror.ErrCodeSubscriptionAlreadyActive),
		})
	case errors.Is(err, domainerror.ErrSubscriptionAlreadyInactive):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Subscription is already inactive",
			Code:  string(domainerror.ErrCodeSubscriptionAlreadyInactive),
		})
	case errors.Is(err, domainerror.ErrInvalidFrequency):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Frequency must be daily, weekly, monthly or yearly",
			Code:  string(domainerror.ErrCodeInvalidFrequency),
		})
	case errors.Is(err, domainerror.ErrInvalidSubscriptionAmount):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Amount must not be negative",
			Code:  string(domainerror.ErrCodeInvalidSubscriptionAmount),
		})
	case errors.Is(err, domainerror.ErrEmptySubscriptionName):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Subscription name must not be empty",
			Code:  string(domainerror.ErrCodeEmptySubscriptionName),
		})
	case errors.Is(err, domainerror.ErrCategoryNotFoundForSubscription):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeSubCategoryNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
