package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nutriscore/backend/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		meals := v1.Group("/meals")
		{
			meals.POST("/score", handler.ScoreMeal)
		}

		foods := v1.Group("/foods")
		{
			foods.GET("/barcode/:code", handler.LookupBarcode)
		}

		v1.POST("/targets", handler.CalculateTargets)
	}

	return router
}
