// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kakeibo/backend/config"
	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/application/usecase/category"
	"github.com/kakeibo/backend/internal/application/usecase/subscription"
	"github.com/kakeibo/backend/internal/application/usecase/summary"
	"github.com/kakeibo/backend/internal/application/usecase/transaction"
	"github.com/kakeibo/backend/internal/infra/server/router"
	"github.com/kakeibo/backend/internal/integration/adapters"
	"github.com/kakeibo/backend/internal/integration/cache"
	"github.com/kakeibo/backend/internal/integration/entrypoint/controller"
	"github.com/kakeibo/backend/internal/integration/entrypoint/middleware"
	"github.com/kakeibo/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil, in which case the summary cache is disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)

	// Adapters
	var summaryCache adapter.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewSummaryCache(redisClient, cfg.Cache.SummaryTTL)
	}
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	clock := adapters.NewSystemClock()

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)

	// Subscription use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo, categoryRepo)
	updateSubscriptionUseCase := subscription.NewUpdateSubscriptionUseCase(subscriptionRepo, categoryRepo)
	activateSubscriptionUseCase := subscription.NewActivateSubscriptionUseCase(subscriptionRepo, clock)
	deactivateSubscriptionUseCase := subscription.NewDeactivateSubscriptionUseCase(subscriptionRepo, clock)
	getCostsUseCase := subscription.NewGetCostsUseCase(subscriptionRepo, categoryRepo)

	// Summary use case
	getMonthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(transactionRepo, categoryRepo, summaryCache, clock)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
	)

	subscriptionController := controller.NewSubscriptionController(
		listSubscriptionsUseCase,
		createSubscriptionUseCase,
		updateSubscriptionUseCase,
		activateSubscriptionUseCase,
		deactivateSubscriptionUseCase,
		getCostsUseCase,
	)

	summaryController := controller.NewSummaryController(getMonthlySummaryUseCase)

	// Middleware. Tests get a permissive rate limit so suites stay stable.
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(10000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		subscriptionController,
		summaryController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
