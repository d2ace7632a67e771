package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/farm-manager/backend/internal/domain/entity"
	domainerror "github.com/farm-manager/backend/internal/domain/error"
)

// RecentTransactionLimit is the number of transactions listed in a report.
const RecentTransactionLimit = 10

var hundred = decimal.NewFromInt(100)

// GetReportInput represents the input for building a report.
type GetReportInput struct {
	Period Period
}

// GetReportUseCase builds the periodic financial and operational farm report.
type GetReportUseCase struct {
	aggregator *MetricAggregator
	trends     *TrendBuilder
	cache      ReportCache
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
// cache may be nil, in which case every request is computed.
func NewGetReportUseCase(repo ReportRepository, cache ReportCache, cacheTTL time.Duration, now func() time.Time) *GetReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetReportUseCase{
		aggregator: NewMetricAggregator(repo),
		trends:     NewTrendBuilder(repo),
		cache:      cache,
		cacheTTL:   cacheTTL,
		now:        now,
	}
}

// Execute builds the report for the requested period.
// Any aggregation failure aborts the whole report.
// Windows are resolved in UTC, the zone ledger dates are stored in.
func (uc *GetReportUseCase) Execute(ctx context.Context, input GetReportInput) (*Report, error) {
	period := ParsePeriod(string(input.Period))
	now := uc.now().UTC()
	window := ResolvePeriod(period, now)
	key := cacheKey(period, window)

	if cached := uc.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	var (
		metrics          *WindowMetrics
		previousIncome   decimal.Decimal
		previousExpenses decimal.Decimal
		trend            []TrendPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		metrics, err = uc.aggregator.Aggregate(gctx, window)
		return err
	})
	g.Go(func() (err error) {
		previousIncome, previousExpenses, err = uc.aggregator.PeriodTotals(gctx, window.PreviousStart, window.Start)
		return err
	})
	g.Go(func() (err error) {
		trend, err = uc.trends.Build(gctx, now)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportAggregationFailed,
			"failed to generate report",
			fmt.Errorf("%w: %w", domainerror.ErrReportAggregationFailed, err),
		)
	}

	report := AssembleReport(period, window, now, metrics, previousIncome, previousExpenses, trend)

	uc.toCache(ctx, key, report)

	return report, nil
}

// AssembleReport merges the aggregates into a Report and derives the ratios.
func AssembleReport(
	period Period,
	window PeriodWindow,
	now time.Time,
	metrics *WindowMetrics,
	previousIncome, previousExpenses decimal.Decimal,
	trend []TrendPoint,
) *Report {
	revenue := metrics.TotalIncome
	expenses := metrics.TotalExpenses
	profit := revenue.Sub(expenses)

	return &Report{
		Period:      period,
		Window:      window,
		GeneratedAt: now,
		Financial: FinancialSummary{
			Revenue:       revenue,
			Expenses:      expenses,
			Profit:        profit,
			ProfitMargin:  ProfitMargin(profit, revenue),
			RevenueChange: PercentChange(revenue, previousIncome),
			ExpenseChange: PercentChange(expenses, previousExpenses),
		},
		Overview: Overview{
			Livestock: metrics.ActiveAnimals,
			Crops:     metrics.ActivePlantings,
			Workers:   metrics.ActiveWorkers,
			Equipment: metrics.ActiveEquipment,
		},
		MonthlyTrend:         trend,
		LivestockPerformance: ComposeLivestockPerformance(metrics.AnimalsByType, metrics.Income),
		CropPerformance:      ComposeCropPerformance(metrics.AreaByCropType, metrics.PlantingStatuses, metrics.Harvests),
		RecentTransactions:   RecentTransactions(metrics.Expenses, metrics.Income, RecentTransactionLimit),
	}
}

// ProfitMargin returns profit as a percentage of revenue, or zero without revenue.
func ProfitMargin(profit, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred)
}

// PercentChange returns the percentage change from previous to current.
// It is zero when previous is zero.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// RecentTransactions merges expenses and income, newest first, keeping at most limit.
// Records sharing a date keep expenses before income, each in input order.
func RecentTransactions(expenses []*entity.Expense, income []*entity.Income, limit int) []Transaction {
	merged := make([]Transaction, 0, len(expenses)+len(income))
	for _, e := range expenses {
		merged = append(merged, Transaction{
			ID:          e.ID,
			Kind:        TransactionKindExpense,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        e.Date,
			Category:    string(e.Category),
		})
	}
	for _, i := range income {
		merged = append(merged, Transaction{
			ID:          i.ID,
			Kind:        TransactionKindIncome,
			Description: i.Description,
			Amount:      i.Amount,
			Date:        i.Date,
			Category:    string(i.Category),
		})
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Date.After(merged[b].Date)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// fromCache returns the cached report for key, or nil on a miss or cache failure.
func (uc *GetReportUseCase) fromCache(ctx context.Context, key string) *Report {
	if uc.cache == nil {
		return nil
	}

	report, found, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "Report cache read failed",
			"key", key,
			"code", domainerror.ErrCodeReportCacheFailure,
			"error", err,
		)
		return nil
	}
	if !found {
		return nil
	}

	slog.DebugContext(ctx, "Report served from cache", "key", key)
	return report
}

// toCache stores report under key. Failures are logged and otherwise ignored.
func (uc *GetReportUseCase) toCache(ctx context.Context, key string, report *Report) {
	if uc.cache == nil || uc.cacheTTL <= 0 {
		return
	}

	if err := uc.cache.Set(ctx, key, report, uc.cacheTTL); err != nil {
		slog.WarnContext(ctx, "Report cache write failed",
			"key", key,
			"code", domainerror.ErrCodeReportCacheFailure,
			"error", err,
		)
	}
}
