// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/financas-app/backend/config"
	"github.com/financas-app/backend/internal/application/usecase/auth"
	"github.com/financas-app/backend/internal/application/usecase/category"
	"github.com/financas-app/backend/internal/application/usecase/dashboard"
	"github.com/financas-app/backend/internal/application/usecase/setup"
	"github.com/financas-app/backend/internal/application/usecase/transaction"
	"github.com/financas-app/backend/internal/infra/server/router"
	"github.com/financas-app/backend/internal/integration/adapters"
	"github.com/financas-app/backend/internal/integration/entrypoint/controller"
	"github.com/financas-app/backend/internal/integration/entrypoint/middleware"
	"github.com/financas-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	sessionStore := adapters.NewRedisSessionStore(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, sessionStore)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, sessionStore)
	logoutUseCase := auth.NewLogoutUserUseCase(sessionStore)
	restoreSessionUseCase := auth.NewRestoreSessionUseCase(userRepo, sessionStore)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)
	resolveNameUseCase := category.NewResolveNameUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create dashboard use cases
	monthSummaryUseCase := dashboard.NewGetMonthSummaryUseCase(transactionRepo)
	requestTracker := dashboard.NewRequestTracker()

	// Create setup use cases
	completeSetupUseCase := setup.NewCompleteSetupUseCase(userRepo, transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return redisClient.Ping(context.Background()).Err() == nil
		},
	)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		logoutUseCase,
		restoreSessionUseCase,
	)
	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		deleteCategoryUseCase,
		resolveNameUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
	)
	dashboardController := controller.NewDashboardController(
		monthSummaryUseCase,
		requestTracker,
	)
	setupController := controller.NewSetupController(completeSetupUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		dashboardController,
		setupController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
