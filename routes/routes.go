package routes

import (
	"net/http"
	"time"

	"templeseva/handlers"
	"templeseva/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAllocationRoutes registers the priest allocation endpoints.
func RegisterAllocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/allocations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.TokenIssuer))
		api.POST("", hb.AllocateHandler)
		api.POST("/priority", hb.AllocatePriorityHandler)
		api.POST("/validate", hb.ValidateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint. It reports 503
// while the last component check failed.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := hb.Health.Status()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "components": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "components": status})
	})
}

// RegisterMetricsRoute exposes the Prometheus scrape endpoint.
func RegisterMetricsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.MetricsHandler == nil {
		return
	}
	r.GET("/metrics", gin.WrapH(hb.MetricsHandler))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterMetricsRoute(r, hb)
	RegisterAllocationRoutes(r, hb)
}
