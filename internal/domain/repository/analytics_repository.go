package repository

import (
	"context"
	"time"
)

// TopItemResult represents an item's sales performance over a period
type TopItemResult struct {
	ItemName     string
	QuantitySold int
	Revenue      int64 // In paise
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// TopItems returns the best selling items by revenue within [start, end)
	TopItems(ctx context.Context, start, end time.Time, limit int) ([]TopItemResult, error)
}
