package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Report.CacheTTL != 60*time.Second {
		t.Errorf("expected default cache TTL 60s, got %s", cfg.Report.CacheTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 {
		t.Errorf("expected one default origin, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Database.ConnectRetries != 10 || cfg.Database.ConnectRetryDelay != 2*time.Second {
		t.Errorf("unexpected connect retry defaults %d/%s", cfg.Database.ConnectRetries, cfg.Database.ConnectRetryDelay)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REPORT_CACHE_TTL", "5m")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://farm.example.com, https://admin.example.com,")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Report.CacheTTL != 5*time.Minute {
		t.Errorf("expected cache TTL 5m, got %s", cfg.Report.CacheTTL)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("REPORT_RATE_LIMIT_WINDOW", "soon")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Report.RateLimitWindow != time.Minute {
		t.Errorf("expected fallback window 1m, got %s", cfg.Report.RateLimitWindow)
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (LogConfig{Level: tt.level}).SlogLevel(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
