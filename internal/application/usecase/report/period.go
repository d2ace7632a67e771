// Package report contains the farm report use case and its building blocks.
package report

import (
	"strings"
	"time"
)

// Period is a caller-selected reporting granularity.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod normalizes a period keyword. Unknown or empty values fall back to month.
func ParsePeriod(raw string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(raw))); p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return p
	default:
		return PeriodMonth
	}
}

// PeriodWindow holds the current window [Start, End) and the previous window
// [PreviousStart, Start) of equal semantic length.
type PeriodWindow struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PreviousStart time.Time `json:"previous_start"`
}

// ResolvePeriod computes the window boundaries for period relative to now.
// Calendar boundaries are midnight in now's location.
func ResolvePeriod(period Period, now time.Time) PeriodWindow {
	loc := now.Location()

	switch period {
	case PeriodWeek:
		return PeriodWindow{
			Start:         now.AddDate(0, 0, -7),
			End:           now,
			PreviousStart: now.AddDate(0, 0, -14),
		}
	case PeriodQuarter:
		quarter := (int(now.Month()) - 1) / 3
		start := time.Date(now.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
		return PeriodWindow{
			Start:         start,
			End:           start.AddDate(0, 3, 0),
			PreviousStart: start.AddDate(0, -3, 0),
		}
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return PeriodWindow{
			Start:         start,
			End:           start.AddDate(1, 0, 0),
			PreviousStart: start.AddDate(-1, 0, 0),
		}
	default:
		start := monthStart(now)
		return PeriodWindow{
			Start:         start,
			End:           start.AddDate(0, 1, 0),
			PreviousStart: start.AddDate(0, -1, 0),
		}
	}
}

// monthStart returns midnight of the first day of the month containing t.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
