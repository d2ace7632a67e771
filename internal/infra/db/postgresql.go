// Package db provides database connection and management functionality.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farm-manager/backend/config"
	"github.com/farm-manager/backend/internal/integration/persistence/model"
)

const pingTimeout = 2 * time.Second

// Database wraps the GORM connection to the farm database.
type Database struct {
	conn *gorm.DB
}

// NewPostgresConnection opens the farm database and waits for it to answer a
// ping, retrying up to cfg.ConnectRetries times. It gives up early when ctx is done.
func NewPostgresConnection(ctx context.Context, cfg *config.DatabaseConfig) (*Database, error) {
	logLevel := logger.Silent
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	attempts := cfg.ConnectRetries + 1
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = sqlDB.PingContext(pingCtx)
		cancel()
		if err == nil {
			break
		}
		if attempt >= attempts {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to reach database after %d attempts: %w", attempt, err)
		}

		slog.WarnContext(ctx, "Database not ready, retrying",
			"attempt", attempt,
			"max_attempts", attempts,
			"retry_in", cfg.ConnectRetryDelay.String(),
			"error", err,
		)
		select {
		case <-ctx.Done():
			_ = sqlDB.Close()
			return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
		case <-time.After(cfg.ConnectRetryDelay):
		}
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Database{conn: conn}, nil
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.conn
}

// Ping reports whether conn answers within a short timeout. It backs the
// database status of the health endpoint for any gorm dialect.
func Ping(ctx context.Context, conn *gorm.DB) bool {
	sqlDB, err := conn.DB()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get sql.DB for health check", "error", err)
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		slog.ErrorContext(ctx, "Database health check failed", "error", err)
		return false
	}
	return true
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	slog.Info("Database connection closed")
	return nil
}

// AutoMigrate creates or updates the tables behind every farm model.
func (d *Database) AutoMigrate(ctx context.Context) error {
	models := model.AllModels()
	if err := d.conn.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	slog.InfoContext(ctx, "Database schema migrated", "models", len(models))
	return nil
}
