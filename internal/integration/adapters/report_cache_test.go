package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/application/usecase/report"
	"github.com/farm-manager/backend/internal/domain/entity"
	domainerror "github.com/farm-manager/backend/internal/domain/error"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, report.ReportCache) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, NewReportCache(client)
}

func sampleReport() *report.Report {
	now := time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)
	return &report.Report{
		Period:      report.PeriodMonth,
		Window:      report.ResolvePeriod(report.PeriodMonth, now),
		GeneratedAt: now,
		Financial: report.FinancialSummary{
			Revenue:      decimal.NewFromInt(1000),
			Expenses:     decimal.NewFromInt(400),
			Profit:       decimal.NewFromInt(600),
			ProfitMargin: decimal.NewFromInt(60),
		},
		Overview: report.Overview{Livestock: 12, Crops: 3, Workers: 4, Equipment: 2},
		LivestockPerformance: []report.LivestockPerformance{
			{Type: entity.AnimalTypeCattle, Count: 12, Revenue: decimal.NewFromInt(900)},
		},
		CropPerformance: []report.CropPerformance{},
		RecentTransactions: []report.Transaction{
			{ID: uuid.New(), Kind: report.TransactionKindIncome, Description: "Maize", Amount: decimal.NewFromInt(1000), Date: now, Category: "CROP_SALE"},
		},
	}
}

func TestReportCache_SetAndGet(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()
	stored := sampleReport()

	if err := cache.Set(ctx, "farm:report:month:2026-05-01", stored, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ttl := server.TTL("farm:report:month:2026-05-01"); ttl != time.Minute {
		t.Errorf("expected ttl of 1m, got %v", ttl)
	}

	got, found, err := cache.Get(ctx, "farm:report:month:2026-05-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected a cache hit")
	}

	if !got.Financial.Profit.Equal(stored.Financial.Profit) {
		t.Errorf("expected profit %s, got %s", stored.Financial.Profit, got.Financial.Profit)
	}
	if got.Overview != stored.Overview {
		t.Errorf("expected overview %+v, got %+v", stored.Overview, got.Overview)
	}
	if !got.Window.Start.Equal(stored.Window.Start) {
		t.Errorf("expected window start %s, got %s", stored.Window.Start, got.Window.Start)
	}
	if len(got.RecentTransactions) != 1 || got.RecentTransactions[0].ID != stored.RecentTransactions[0].ID {
		t.Errorf("expected the stored transaction back, got %+v", got.RecentTransactions)
	}
	if got.LivestockPerformance[0].Type != entity.AnimalTypeCattle {
		t.Errorf("expected cattle, got %s", got.LivestockPerformance[0].Type)
	}
}

func TestReportCache_Expiry(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "farm:report:week:2026-05-13", sampleReport(), 30*time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	server.FastForward(31 * time.Second)

	_, found, err := cache.Get(ctx, "farm:report:week:2026-05-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected the entry to have expired")
	}
}

func TestReportCache_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, server *miniredis.Miniredis)
	}{
		{
			name: "corrupt entry",
			setup: func(t *testing.T, server *miniredis.Miniredis) {
				if err := server.Set("farm:report:year:2026-01-01", "{not json"); err != nil {
					t.Fatalf("failed to seed: %v", err)
				}
			},
		},
		{
			name: "server down",
			setup: func(t *testing.T, server *miniredis.Miniredis) {
				server.Close()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, cache := newTestCache(t)
			tt.setup(t, server)

			_, found, err := cache.Get(context.Background(), "farm:report:year:2026-01-01")

			if found {
				t.Error("expected no hit")
			}
			if !errors.Is(err, domainerror.ErrReportCacheUnavailable) {
				t.Errorf("expected ErrReportCacheUnavailable, got %v", err)
			}
		})
	}
}
