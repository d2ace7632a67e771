// Package dto defines data transfer objects for HTTP requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/application/usecase/report"
)

// GetReportQuery represents the query parameters for GET /reports.
type GetReportQuery struct {
	Period string `form:"period"`
}

// FailureResponse is the envelope for report errors.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// ReportResponse is the envelope for a successful report.
type ReportResponse struct {
	Success bool       `json:"success"`
	Data    ReportData `json:"data"`
}

// ReportData represents the farm report payload.
type ReportData struct {
	Financial            FinancialResponse     `json:"financial"`
	Overview             OverviewResponse      `json:"overview"`
	MonthlyTrend         []TrendPointResponse  `json:"monthlyTrend"`
	LivestockPerformance []LivestockResponse   `json:"livestockPerformance"`
	CropPerformance      []CropResponse        `json:"cropPerformance"`
	RecentTransactions   []TransactionResponse `json:"recentTransactions"`
	Period               string                `json:"period"`
	Window               ReportWindowResponse  `json:"window"`
	GeneratedAt          string                `json:"generatedAt"`
}

// FinancialResponse represents the money figures of a report.
type FinancialResponse struct {
	Revenue       float64 `json:"revenue"`
	Expenses      float64 `json:"expenses"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profitMargin"`
	RevenueChange float64 `json:"revenueChange"`
	ExpenseChange float64 `json:"expenseChange"`
}

// OverviewResponse represents the headline counts of a report.
type OverviewResponse struct {
	Livestock int64 `json:"livestock"`
	Crops     int64 `json:"crops"`
	Workers   int64 `json:"workers"`
	Equipment int64 `json:"equipment"`
}

// TrendPointResponse represents one month of the monthly trend.
type TrendPointResponse struct {
	Month     string  `json:"month"`
	Livestock int64   `json:"livestock"`
	Crops     int64   `json:"crops"`
	Revenue   float64 `json:"revenue"`
	Expenses  float64 `json:"expenses"`
}

// LivestockResponse represents one animal type in the livestock performance list.
type LivestockResponse struct {
	Type    string  `json:"type"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// CropResponse represents one crop type in the crop performance list.
type CropResponse struct {
	Crop    string  `json:"crop"`
	Area    float64 `json:"area"`
	Yield   float64 `json:"yield"`
	Status  string  `json:"status"`
	Revenue float64 `json:"revenue"`
}

// TransactionResponse represents an entry of the recent transactions list.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// ReportWindowResponse represents the date range a report covers.
type ReportWindowResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	PreviousStart string `json:"previousStart"`
}

// ToReportResponse converts a report to its HTTP representation.
// Lists are never null and amounts are rounded to cents.
func ToReportResponse(r *report.Report) ReportResponse {
	trend := make([]TrendPointResponse, len(r.MonthlyTrend))
	for i, p := range r.MonthlyTrend {
		trend[i] = TrendPointResponse{
			Month:     p.Month,
			Livestock: p.Livestock,
			Crops:     p.Crops,
			Revenue:   toNumber(p.Revenue),
			Expenses:  toNumber(p.Expenses),
		}
	}

	livestock := make([]LivestockResponse, len(r.LivestockPerformance))
	for i, l := range r.LivestockPerformance {
		livestock[i] = LivestockResponse{
			Type:    string(l.Type),
			Count:   l.Count,
			Revenue: toNumber(l.Revenue),
		}
	}

	crops := make([]CropResponse, len(r.CropPerformance))
	for i, c := range r.CropPerformance {
		crops[i] = CropResponse{
			Crop:    c.Crop,
			Area:    toNumber(c.Area),
			Yield:   toNumber(c.Yield),
			Status:  string(c.Status),
			Revenue: toNumber(c.Revenue),
		}
	}

	transactions := make([]TransactionResponse, len(r.RecentTransactions))
	for i, t := range r.RecentTransactions {
		transactions[i] = TransactionResponse{
			ID:          t.ID.String(),
			Type:        string(t.Kind),
			Description: t.Description,
			Amount:      toNumber(t.Amount),
			Date:        formatTime(t.Date),
			Category:    t.Category,
		}
	}

	f := r.Financial
	return ReportResponse{
		Success: true,
		Data: ReportData{
			Financial: FinancialResponse{
				Revenue:       toNumber(f.Revenue),
				Expenses:      toNumber(f.Expenses),
				Profit:        toNumber(f.Profit),
				ProfitMargin:  toNumber(f.ProfitMargin),
				RevenueChange: toNumber(f.RevenueChange),
				ExpenseChange: toNumber(f.ExpenseChange),
			},
			Overview: OverviewResponse{
				Livestock: r.Overview.Livestock,
				Crops:     r.Overview.Crops,
				Workers:   r.Overview.Workers,
				Equipment: r.Overview.Equipment,
			},
			MonthlyTrend:         trend,
			LivestockPerformance: livestock,
			CropPerformance:      crops,
			RecentTransactions:   transactions,
			Period:               string(r.Period),
			Window: ReportWindowResponse{
				Start:         formatTime(r.Window.Start),
				End:           formatTime(r.Window.End),
				PreviousStart: formatTime(r.Window.PreviousStart),
			},
			GeneratedAt: formatTime(r.GeneratedAt),
		},
	}
}

func toNumber(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
