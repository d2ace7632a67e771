package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// TrendMonths is the number of calendar months in the monthly trend.
const TrendMonths = 6

// trendQueryLimit caps the trend queries in flight for one report.
const trendQueryLimit = 8

// TrendBuilder aggregates per-month snapshots for the monthly trend.
type TrendBuilder struct {
	repo ReportRepository
}

// NewTrendBuilder creates a new TrendBuilder instance.
func NewTrendBuilder(repo ReportRepository) *TrendBuilder {
	return &TrendBuilder{
		repo: repo,
	}
}

// TrendMonthWindows returns the TrendMonths calendar months ending with the
// month containing now, oldest first. Each window is [Start, End).
func TrendMonthWindows(now time.Time) []PeriodWindow {
	current := monthStart(now)
	windows := make([]PeriodWindow, TrendMonths)
	for i := range windows {
		start := current.AddDate(0, i-(TrendMonths-1), 0)
		windows[i] = PeriodWindow{
			Start:         start,
			End:           start.AddDate(0, 1, 0),
			PreviousStart: start.AddDate(0, -1, 0),
		}
	}
	return windows
}

// Build returns the monthly trend ending with the month containing now.
// The trend is month-grained whatever period the report was requested for.
func (b *TrendBuilder) Build(ctx context.Context, now time.Time) ([]TrendPoint, error) {
	windows := TrendMonthWindows(now)
	points := make([]TrendPoint, len(windows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(trendQueryLimit)

	for i, w := range windows {
		p := &points[i]
		p.MonthStart = w.Start
		p.Month = w.Start.Format("Jan")

		g.Go(func() (err error) {
			p.Revenue, err = b.repo.SumIncome(ctx, w.Start, w.End)
			return wrap("sum monthly income", err)
		})
		g.Go(func() (err error) {
			p.Expenses, err = b.repo.SumExpenses(ctx, w.Start, w.End)
			return wrap("sum monthly expenses", err)
		})
		g.Go(func() (err error) {
			p.Crops, err = b.repo.CountPlantingsCreated(ctx, w.Start, w.End)
			return wrap("count monthly plantings", err)
		})
		g.Go(func() (err error) {
			p.Livestock, err = b.repo.CountAnimalsAsOf(ctx, w.Start, w.End)
			return wrap("count monthly livestock", err)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
