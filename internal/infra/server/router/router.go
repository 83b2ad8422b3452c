// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kakeibo/backend/internal/integration/entrypoint/controller"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	transactionController  *controller.TransactionController
	categoryController     *controller.CategoryController
	subscriptionController *controller.SubscriptionController
	summaryController      *controller.SummaryController
	rateLimiter            *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	subscriptionController *controller.SubscriptionController,
	summaryController *controller.SummaryController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		transactionController:  transactionController,
		categoryController:     categoryController,
		subscriptionController: subscriptionController,
		summaryController:      summaryController,
		rateLimiter:            rateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	if r.transactionController != nil {
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}

	if r.categoryController != nil {
		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
		}
	}

	if r.subscriptionController != nil {
		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", r.subscriptionController.List)
			subscriptions.POST("", r.subscriptionController.Create)
			subscriptions.GET("/costs", r.subscriptionController.Costs)
			subscriptions.PATCH("/:id", r.subscriptionController.Update)
			subscriptions.POST("/:id/activate", r.subscriptionController.Activate)
			subscriptions.POST("/:id/deactivate", r.subscriptionController.Deactivate)
		}
	}

	if r.summaryController != nil {
		v1.GET("/summary", r.summaryController.Monthly)
	}
}
