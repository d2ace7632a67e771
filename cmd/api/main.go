// Package main is the entry point for the Farm Manager API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/farm-manager/backend/config"
	"github.com/farm-manager/backend/internal/infra/cache"
	"github.com/farm-manager/backend/internal/infra/db"
	"github.com/farm-manager/backend/internal/infra/dependency"
	"github.com/farm-manager/backend/internal/integration/persistence"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	seedDemo := flag.Bool("seed-demo", false, "insert demo farm data into an empty database")
	flag.Parse()

	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Farm Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	database, err := db.NewPostgresConnection(ctx, &cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(ctx); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	if *migrateOnly {
		slog.Info("Database migrations completed successfully")
		return
	}

	if *seedDemo {
		seeded, err := persistence.SeedDemoData(ctx, database.DB(), time.Now())
		if err != nil {
			slog.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
		if !seeded {
			slog.Info("Demo data skipped, database already has farm records")
		}
	}

	// Initialize the optional report cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, running without report cache", "error", err)
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	// Wire dependencies and setup router
	injector := dependency.NewInjector(cfg, database.DB(), redisClient, utcNow)
	engine := injector.Router.Setup(cfg.Server.Environment)

	go injector.RateLimiter.RunCleanup(ctx, cfg.Report.RateLimitWindow)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// utcNow is the report clock. Report windows start at midnight UTC.
func utcNow() time.Time {
	return time.Now().UTC()
}
