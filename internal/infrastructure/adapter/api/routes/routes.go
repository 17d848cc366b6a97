package routes

import (
	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	User     *handler.UserHandler
	Transfer *handler.TransferHandler
	Health   *handler.HealthHandler
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(logger coreport.Logger, timeProvider coreport.TimeProvider, handlers Handlers) *gin.Engine {
	router := gin.New()

	SetupMiddlewares(router, logger, timeProvider)
	SetupRoutes(router, handlers)

	return router
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers) {
	router.GET("/health", handlers.Health.Health)

	userRoutes := router.Group("/users")
	{
		// POST /users
		userRoutes.POST("", handlers.User.CreateUsers)

		// GET /users
		userRoutes.GET("", handlers.User.ListUsers)

		// GET /users/:userId
		userRoutes.GET("/:userId", handlers.User.GetUser)
	}

	// POST /transfer
	router.POST("/transfer", handlers.Transfer.Transfer)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}
