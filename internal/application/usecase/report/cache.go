package report

import (
	"context"
	"time"
)

// ReportCache stores assembled reports for a short time.
type ReportCache interface {
	// Get returns the cached report for key. found is false on a miss.
	Get(ctx context.Context, key string) (report *Report, found bool, err error)

	// Set stores report under key for ttl.
	Set(ctx context.Context, key string, report *Report, ttl time.Duration) error
}

// cacheKey identifies a report by period and the calendar day its window starts on.
// Week windows slide with now, so a cached week report may describe a window
// up to one cache TTL older than the current one. Keep REPORT_CACHE_TTL short
// when weekly figures must be exact.
func cacheKey(period Period, window PeriodWindow) string {
	return "farm:report:" + string(period) + ":" + window.Start.Format("2006-01-02")
}
