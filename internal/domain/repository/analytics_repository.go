package repository

import (
	"context"
	"time"

	"github.com/houseoffoodsin/HOFBusiness/internal/domain/analytics"
)

type AnalyticsRepository interface {
	// SaveDaily overwrites the record keyed by its id. Recomputation is
	// idempotent, so overwriting is always safe.
	SaveDaily(ctx context.Context, d *analytics.DailyAnalytics) error
	FindDaily(ctx context.Context, id string) (*analytics.DailyAnalytics, error)
	ListDailyRange(ctx context.Context, start, end time.Time) ([]analytics.DailyAnalytics, error)
}
