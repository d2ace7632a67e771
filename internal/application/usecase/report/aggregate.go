package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// WindowMetrics holds the raw aggregates for a single report window.
type WindowMetrics struct {
	ActiveAnimals    int64
	AnimalsByType    []AnimalTypeCount
	ActivePlantings  int64
	AreaByCropType   []CropAreaTotal
	PlantingStatuses []PlantingStatusRecord
	Harvests         []HarvestRecord
	ActiveWorkers    int64
	ActiveEquipment  int64
	Expenses         []*entity.Expense
	Income           []*entity.Income
	TotalExpenses    decimal.Decimal
	TotalIncome      decimal.Decimal
}

// MetricAggregator runs the independent aggregate queries for a window.
type MetricAggregator struct {
	repo ReportRepository
}

// NewMetricAggregator creates a new MetricAggregator instance.
func NewMetricAggregator(repo ReportRepository) *MetricAggregator {
	return &MetricAggregator{
		repo: repo,
	}
}

// Aggregate collects every current-window metric concurrently.
// The first failing query cancels the others and its error is returned.
func (a *MetricAggregator) Aggregate(ctx context.Context, window PeriodWindow) (*WindowMetrics, error) {
	m := &WindowMetrics{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		m.ActiveAnimals, err = a.repo.CountActiveAnimals(ctx)
		return wrap("count active animals", err)
	})
	g.Go(func() (err error) {
		m.AnimalsByType, err = a.repo.CountActiveAnimalsByType(ctx)
		return wrap("count animals by type", err)
	})
	g.Go(func() (err error) {
		m.ActivePlantings, err = a.repo.CountPlantingsByStatus(ctx, entity.ActivePlantingStatuses())
		return wrap("count active plantings", err)
	})
	g.Go(func() (err error) {
		m.AreaByCropType, err = a.repo.SumPlantedAreaByCropType(ctx, entity.CultivatedPlantingStatuses())
		return wrap("sum planted area", err)
	})
	g.Go(func() (err error) {
		m.PlantingStatuses, err = a.repo.ListPlantingStatuses(ctx, entity.CultivatedPlantingStatuses())
		return wrap("list planting statuses", err)
	})
	g.Go(func() (err error) {
		m.Harvests, err = a.repo.ListHarvests(ctx, window.Start, window.End)
		return wrap("list harvests", err)
	})
	g.Go(func() (err error) {
		m.ActiveWorkers, err = a.repo.CountActiveWorkers(ctx)
		return wrap("count active workers", err)
	})
	g.Go(func() (err error) {
		m.ActiveEquipment, err = a.repo.CountNonRetiredEquipment(ctx)
		return wrap("count equipment", err)
	})
	g.Go(func() (err error) {
		m.Expenses, err = a.repo.ListExpenses(ctx, window.Start, window.End)
		return wrap("list expenses", err)
	})
	g.Go(func() (err error) {
		m.Income, err = a.repo.ListIncome(ctx, window.Start, window.End)
		return wrap("list income", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.TotalExpenses = SumExpenseAmounts(m.Expenses)
	m.TotalIncome = SumIncomeAmounts(m.Income)

	return m, nil
}

// PeriodTotals returns income and expense totals within [start, end).
func (a *MetricAggregator) PeriodTotals(ctx context.Context, start, end time.Time) (income, expenses decimal.Decimal, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		income, err = a.repo.SumIncome(ctx, start, end)
		return wrap("sum income", err)
	})
	g.Go(func() (err error) {
		expenses, err = a.repo.SumExpenses(ctx, start, end)
		return wrap("sum expenses", err)
	})

	if err := g.Wait(); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return income, expenses, nil
}

// SumExpenseAmounts adds up the amounts of expenses.
func SumExpenseAmounts(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// SumIncomeAmounts adds up the amounts of income records.
func SumIncomeAmounts(income []*entity.Income) decimal.Decimal {
	total := decimal.Zero
	for _, i := range income {
		total = total.Add(i.Amount)
	}
	return total
}

func wrap(op string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return nil
}
