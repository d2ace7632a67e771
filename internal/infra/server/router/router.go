// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/farm-manager/backend/internal/integration/entrypoint/controller"
	"github.com/farm-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	reportController  *controller.ReportController
	reportRateLimiter *middleware.RateLimiter
	allowedOrigins    []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	reportRateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:  healthController,
		reportController:  reportController,
		reportRateLimiter: reportRateLimiter,
		allowedOrigins:    allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(r.corsMiddleware())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// corsMiddleware allows the client-rendered pages to call the API.
func (r *Router) corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(r.allowedOrigins) == 0 || (len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = r.allowedOrigins
	}
	cfg.AllowMethods = []string{"GET", "OPTIONS"}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		reports := api.Group("/reports")
		if r.reportRateLimiter != nil {
			reports.Use(r.reportRateLimiter.Middleware())
		}
		{
			reports.GET("", r.reportController.GetReport)
		}
	}
}
