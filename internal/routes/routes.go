package routes

import (
	_ "jobboard_backend/docs"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты. apiMiddleware runs on
// every /api/v1 request ahead of the per-group auth guards.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	guards handlers.Guards,
	apiMiddleware ...gin.HandlerFunc,
) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)
	ginRouter.GET("/metrics", gin.WrapH(metrics.Handler()))
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := ginRouter.Group("/api/v1")
	api.Use(apiMiddleware...)
	{
		// /jobs/saved is static and wins over /jobs/:id.
		appHandlers.BookmarkHandler.RegisterRoutes(api, guards)
		appHandlers.JobHandler.RegisterRoutes(api, guards)
		appHandlers.CompanyHandler.RegisterRoutes(api, guards)
		appHandlers.UserHandler.RegisterRoutes(api, guards)
	}

	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
