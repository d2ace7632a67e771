// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farm-manager/backend/internal/application/usecase/report"
	domainerror "github.com/farm-manager/backend/internal/domain/error"
)

// reportCache implements the report.ReportCache interface on Redis.
type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client) report.ReportCache {
	return &reportCache{
		client: client,
	}
}

// Get loads the report stored under key. A missing key is a miss, not an error.
func (c *reportCache) Get(ctx context.Context, key string) (*report.Report, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %w", domainerror.ErrReportCacheUnavailable, key, err)
	}

	var cached report.Report
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: decode %s: %w", domainerror.ErrReportCacheUnavailable, key, err)
	}
	return &cached, true, nil
}

// Set stores report under key, expiring after ttl.
func (c *reportCache) Set(ctx context.Context, key string, rpt *report.Report, ttl time.Duration) error {
	data, err := json.Marshal(rpt)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domainerror.ErrReportCacheUnavailable, key, err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %w", domainerror.ErrReportCacheUnavailable, key, err)
	}
	return nil
}
