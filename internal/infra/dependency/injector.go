// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/farm-manager/backend/config"
	"github.com/farm-manager/backend/internal/application/usecase/report"
	"github.com/farm-manager/backend/internal/infra/cache"
	"github.com/farm-manager/backend/internal/infra/db"
	"github.com/farm-manager/backend/internal/infra/server/router"
	"github.com/farm-manager/backend/internal/integration/adapters"
	"github.com/farm-manager/backend/internal/integration/entrypoint/controller"
	"github.com/farm-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/farm-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case reports are not cached.
func NewInjector(cfg *config.Config, conn *gorm.DB, redisClient *redis.Client, now func() time.Time) *Injector {
	// Create repositories
	reportRepo := persistence.NewReportRepository(conn)

	// Create adapters/services
	var reportCache report.ReportCache
	if redisClient != nil {
		reportCache = adapters.NewReportCache(redisClient)
	}

	// Create report use cases
	getReportUseCase := report.NewGetReportUseCase(reportRepo, reportCache, cfg.Report.CacheTTL, now)

	// Create controllers
	var cacheHealthChecker func() bool
	if redisClient != nil {
		cacheHealthChecker = func() bool {
			return cache.HealthCheck(context.Background(), redisClient)
		}
	}
	healthController := controller.NewHealthController(func() bool {
		return db.Ping(context.Background(), conn)
	}, cacheHealthChecker)

	reportController := controller.NewReportController(getReportUseCase)

	// Create middleware
	reportRateLimiter := middleware.NewRateLimiter(cfg.Report.RateLimit, cfg.Report.RateLimitWindow)

	// Create router
	r := router.NewRouter(healthController, reportController, reportRateLimiter, cfg.CORS.AllowedOrigins)

	return &Injector{
		Config:      cfg,
		DB:          conn,
		Redis:       redisClient,
		RateLimiter: reportRateLimiter,
		Router:      r,
	}
}
