package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/application/usecase/report"
	"github.com/farm-manager/backend/internal/domain/entity"
	domainerror "github.com/farm-manager/backend/internal/domain/error"
	"github.com/farm-manager/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	report *report.Report
	err    error
	input  report.GetReportInput
}

func (s *stubGenerator) Execute(ctx context.Context, input report.GetReportInput) (*report.Report, error) {
	s.input = input
	return s.report, s.err
}

func stubReport() *report.Report {
	now := time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)
	trend := make([]report.TrendPoint, 0, report.TrendMonths)
	for _, w := range report.TrendMonthWindows(now) {
		trend = append(trend, report.TrendPoint{MonthStart: w.Start, Month: w.Start.Format("Jan"), Revenue: decimal.Zero, Expenses: decimal.Zero})
	}
	return &report.Report{
		Period:      report.PeriodMonth,
		Window:      report.ResolvePeriod(report.PeriodMonth, now),
		GeneratedAt: now,
		Financial: report.FinancialSummary{
			Revenue:       decimal.NewFromInt(1000),
			Expenses:      decimal.NewFromInt(400),
			Profit:        decimal.NewFromInt(600),
			ProfitMargin:  decimal.NewFromInt(60),
			RevenueChange: decimal.NewFromInt(100),
			ExpenseChange: decimal.RequireFromString("33.3333333"),
		},
		Overview:     report.Overview{Livestock: 10, Crops: 2, Workers: 3, Equipment: 1},
		MonthlyTrend: trend,
		CropPerformance: []report.CropPerformance{
			{CropTypeID: uuid.New(), Crop: "Maize", Area: decimal.NewFromFloat(2.5), Yield: decimal.NewFromInt(120), Status: entity.PlantingStatusGrowing, Revenue: decimal.NewFromInt(500)},
		},
		RecentTransactions: []report.Transaction{
			{ID: uuid.New(), Kind: report.TransactionKindExpense, Description: "Feed", Amount: decimal.NewFromInt(400), Date: now, Category: "FEED"},
		},
	}
}

func serveReport(gen ReportGenerator, target string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/api/reports", NewReportController(gen).GetReport)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestReportController_GetReport(t *testing.T) {
	gen := &stubGenerator{report: stubReport()}

	w := serveReport(gen, "/api/reports?period=quarter")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gen.input.Period != report.PeriodQuarter {
		t.Errorf("expected period quarter to be passed through, got %q", gen.input.Period)
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Financial            map[string]float64 `json:"financial"`
			Overview             map[string]int64   `json:"overview"`
			MonthlyTrend         []map[string]any   `json:"monthlyTrend"`
			LivestockPerformance []map[string]any   `json:"livestockPerformance"`
			CropPerformance      []map[string]any   `json:"cropPerformance"`
			RecentTransactions   []map[string]any   `json:"recentTransactions"`
			Period               string             `json:"period"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if !body.Success {
		t.Error("expected success true")
	}
	expectedFinancial := map[string]float64{
		"revenue":       1000,
		"expenses":      400,
		"profit":        600,
		"profitMargin":  60,
		"revenueChange": 100,
		"expenseChange": 33.33,
	}
	for key, expected := range expectedFinancial {
		if body.Data.Financial[key] != expected {
			t.Errorf("financial.%s: expected %v, got %v", key, expected, body.Data.Financial[key])
		}
	}
	if body.Data.Overview["livestock"] != 10 || body.Data.Overview["equipment"] != 1 {
		t.Errorf("unexpected overview %v", body.Data.Overview)
	}
	if len(body.Data.MonthlyTrend) != report.TrendMonths {
		t.Errorf("expected %d trend points, got %d", report.TrendMonths, len(body.Data.MonthlyTrend))
	}
	if body.Data.LivestockPerformance == nil {
		t.Error("expected livestockPerformance to be an empty list, not null")
	}
	if len(body.Data.CropPerformance) != 1 || body.Data.CropPerformance[0]["yield"] != float64(120) {
		t.Errorf("unexpected crop performance %v", body.Data.CropPerformance)
	}
	if len(body.Data.RecentTransactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(body.Data.RecentTransactions))
	}
	tx := body.Data.RecentTransactions[0]
	if tx["type"] != "expense" || tx["date"] != "2026-05-20T12:00:00Z" {
		t.Errorf("unexpected transaction %v", tx)
	}
	if body.Data.Period != "month" {
		t.Errorf("expected period month, got %s", body.Data.Period)
	}
}

func TestReportController_GetReport_Failure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "report error",
			err: domainerror.NewReportError(
				domainerror.ErrCodeReportAggregationFailed,
				"failed to generate report",
				errors.New("connection reset by peer"),
			),
		},
		{
			name: "unexpected error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveReport(&stubGenerator{err: tt.err}, "/api/reports?period=week")

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}

			var body dto.FailureResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Success {
				t.Error("expected success false")
			}
			if body.Error != "Failed to generate report" {
				t.Errorf("expected generic message, got %q", body.Error)
			}
			if body.Code != "" {
				t.Errorf("expected no code in the response, got %q", body.Code)
			}
		})
	}
}

func TestHealthController_Check(t *testing.T) {
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name     string
		db       func() bool
		cache    func() bool
		database string
		cacheStr string
	}{
		{"all up", up, up, "connected", "connected"},
		{"cache disabled", up, nil, "connected", "disabled"},
		{"cache down", up, down, "connected", "disconnected"},
		{"database down", down, up, "disconnected", "connected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthController(tt.db, tt.cache).Check)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var body HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Status != "ok" || body.Database != tt.database || body.Cache != tt.cacheStr {
				t.Errorf("unexpected health %+v", body)
			}
		})
	}
}
