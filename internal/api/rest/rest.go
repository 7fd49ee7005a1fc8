package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Asamoah4284/PENNIT-sub001/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Attribution endpoints (open; an authenticated viewer improves
		// dedup accuracy but is not required)
		v1.POST("/contents/:id/view", middleware.ViewerIdentity(authCfg), handler.RecordView)
		v1.POST("/contents/:id/progress", middleware.ViewerIdentity(authCfg), handler.RecordProgress)

		// Counter snapshot (public read access)
		v1.GET("/contents/:id/stats", handler.GetContentStats)

		// Earnings endpoints (public read access)
		v1.GET("/authors/:id/earnings", handler.GetEarnings)
		v1.GET("/authors/:id/earnings/estimate", handler.GetEstimatedEarnings)

		// Settlement triggers (requires API key authentication)
		v1.POST("/settlements/:month/accrual", middleware.APIKeyAuth(authCfg), handler.RunAccrual)
		v1.POST("/settlements/:month/payouts", middleware.APIKeyAuth(authCfg), handler.RunPayouts)
	}
}
