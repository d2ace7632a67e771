package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// Report is the assembled farm report for one period.
type Report struct {
	Period               Period                 `json:"period"`
	Window               PeriodWindow           `json:"window"`
	GeneratedAt          time.Time              `json:"generated_at"`
	Financial            FinancialSummary       `json:"financial"`
	Overview             Overview               `json:"overview"`
	MonthlyTrend         []TrendPoint           `json:"monthly_trend"`
	LivestockPerformance []LivestockPerformance `json:"livestock_performance"`
	CropPerformance      []CropPerformance      `json:"crop_performance"`
	RecentTransactions   []Transaction          `json:"recent_transactions"`
}

// FinancialSummary holds the money figures for the current window.
// Margins and changes are percentages.
type FinancialSummary struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
	RevenueChange decimal.Decimal `json:"revenue_change"`
	ExpenseChange decimal.Decimal `json:"expense_change"`
}

// Overview holds the headline operational counts.
type Overview struct {
	Livestock int64 `json:"livestock"`
	Crops     int64 `json:"crops"`
	Workers   int64 `json:"workers"`
	Equipment int64 `json:"equipment"`
}

// TrendPoint is one calendar month of the monthly trend.
type TrendPoint struct {
	MonthStart time.Time       `json:"month_start"`
	Month      string          `json:"month"`
	Livestock  int64           `json:"livestock"`
	Crops      int64           `json:"crops"`
	Revenue    decimal.Decimal `json:"revenue"`
	Expenses   decimal.Decimal `json:"expenses"`
}

// LivestockPerformance is the headcount and sale revenue of one animal type.
type LivestockPerformance struct {
	Type    entity.AnimalType `json:"type"`
	Count   int64             `json:"count"`
	Revenue decimal.Decimal   `json:"revenue"`
}

// CropPerformance is the area, yield and sale revenue of one crop type.
type CropPerformance struct {
	CropTypeID uuid.UUID             `json:"crop_type_id"`
	Crop       string                `json:"crop"`
	Area       decimal.Decimal       `json:"area"`
	Yield      decimal.Decimal       `json:"yield"`
	Status     entity.PlantingStatus `json:"status"`
	Revenue    decimal.Decimal       `json:"revenue"`
}

// TransactionKind tags a recent transaction with the ledger it came from.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// Transaction is an expense or income record in the recent transactions list.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Kind        TransactionKind `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
}
