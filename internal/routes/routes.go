package routes

import (
	"net/http"

	"autozar_backend/internal/handlers"
	"autozar_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the HTTP API and the operational endpoints.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.ListingHandler.RegisterRoutes(api)
		appHandlers.MyListingHandler.RegisterRoutes(api, authMiddleware)
		appHandlers.FavoritesHandler.RegisterRoutes(api, authMiddleware)
		appHandlers.AdminHandler.RegisterRoutes(api, authMiddleware)
	}
	logger.Info("HTTP routes registered", "routes", len(ginRouter.Routes()))
}
