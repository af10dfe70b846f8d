package repository

import (
	"context"
	"time"

	domainRepo "github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) TopItems(ctx context.Context, start, end time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ri.item_name as item_name,
			COALESCE(SUM(ri.quantity), 0) as quantity_sold,
			COALESCE(SUM(ri.amount), 0) as revenue
		FROM receipt_items ri
		JOIN receipts rc ON rc.id = ri.receipt_id
		WHERE rc.created_at >= ? AND rc.created_at < ?
		GROUP BY ri.item_name
		ORDER BY revenue DESC
		LIMIT ?
	`, start, end, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
