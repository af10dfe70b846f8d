package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
)

type fakeAnalyticsRepo struct {
	rows []repository.TopItemResult
}

func (f *fakeAnalyticsRepo) TopItems(ctx context.Context, start, end time.Time, limit int) ([]repository.TopItemResult, error) {
	return f.rows, nil
}

func str(s string) *string { return &s }

func receiptAt(createdAt time.Time, grandTotal, discount, gst int64) entity.Receipt {
	return entity.Receipt{
		ReceiptNo:      "WCS-20250314-0001",
		GrandTotal:     grandTotal,
		DiscountAmount: discount,
		GSTAmount:      gst,
		CreatedAt:      createdAt,
	}
}

func newAnalyticsService(receiptRepo repository.ReceiptRepository, rows []repository.TopItemResult) *AnalyticsService {
	return NewAnalyticsService(receiptRepo, &fakeAnalyticsRepo{rows: rows}, testShopConfig())
}

func TestAggregateSummaryMatchesChartSum(t *testing.T) {
	svc := newAnalyticsService(newFakeReceiptRepo(), nil)

	day1 := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	receipts := []entity.Receipt{
		receiptAt(day1, 100000, 10000, 5000),
		receiptAt(day1, 50000, 0, 0),
		receiptAt(day2, 200000, 0, 30000),
	}

	summary, chart := svc.Aggregate(receipts)

	assert.Equal(t, 3, summary.TotalReceipts)
	assert.InDelta(t, 3500.0, summary.TotalRevenue, 0.001)
	assert.InDelta(t, 100.0, summary.TotalDiscount, 0.001)
	assert.InDelta(t, 350.0, summary.TotalGST, 0.001)

	var chartSum float64
	var chartCount int
	for _, p := range chart {
		chartSum += p.Revenue
		chartCount += p.Count
	}
	assert.InDelta(t, summary.TotalRevenue, chartSum, 0.001)
	assert.Equal(t, summary.TotalReceipts, chartCount)
}

func TestAggregateChartSortedAscending(t *testing.T) {
	svc := newAnalyticsService(newFakeReceiptRepo(), nil)

	receipts := []entity.Receipt{
		receiptAt(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), 100, 0, 0),
		receiptAt(time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC), 100, 0, 0),
		receiptAt(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), 100, 0, 0),
	}

	_, chart := svc.Aggregate(receipts)

	require.Len(t, chart, 3)
	assert.Equal(t, "2025-03-13", chart[0].Date)
	assert.Equal(t, "2025-03-14", chart[1].Date)
	assert.Equal(t, "2025-03-15", chart[2].Date)
}

func TestAggregateBucketsLateNightSaleOnLocalDay(t *testing.T) {
	svc := newAnalyticsService(newFakeReceiptRepo(), nil)

	// 19:00 UTC March 14 is 00:30 IST March 15.
	receipts := []entity.Receipt{
		receiptAt(time.Date(2025, 3, 14, 19, 0, 0, 0, time.UTC), 100, 0, 0),
	}

	_, chart := svc.Aggregate(receipts)

	require.Len(t, chart, 1)
	assert.Equal(t, "2025-03-15", chart[0].Date)
}

func TestAggregateEmpty(t *testing.T) {
	svc := newAnalyticsService(newFakeReceiptRepo(), nil)

	summary, chart := svc.Aggregate(nil)

	assert.Zero(t, summary.TotalReceipts)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AverageOrderValue)
	assert.Empty(t, chart)
}

func TestGetAnalyticsIncludesTopItems(t *testing.T) {
	rows := []repository.TopItemResult{
		{ItemName: "Mountain Blaze Pro", QuantitySold: 4, Revenue: 519600},
		{ItemName: "Kids Adventure", QuantitySold: 2, Revenue: 59800},
	}
	svc := newAnalyticsService(newFakeReceiptRepo(), rows)

	result, err := svc.GetAnalytics(context.Background(), period.Today, "", "")

	require.NoError(t, err)
	require.Len(t, result.TopItems, 2)
	assert.Equal(t, "Mountain Blaze Pro", result.TopItems[0].ItemName)
	assert.InDelta(t, 5196.0, result.TopItems[0].Revenue, 0.001)
	assert.Equal(t, period.Today, result.Period)
	assert.NotEmpty(t, result.DateRange.Start)
	assert.Equal(t, result.DateRange.Start, result.DateRange.End)
}

func TestFilterReceiptsBySearch(t *testing.T) {
	svc := newAnalyticsService(newFakeReceiptRepo(), nil)

	receipts := []entity.Receipt{
		{ReceiptNo: "WCS-20250314-0001", CustomerName: str("Asha")},
		{ReceiptNo: "WCS-20250314-0002", CustomerName: str("Bilal"), CustomerPhone: str("9876543210")},
	}

	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{Search: "asha"}), 1)
	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{Search: "98765"}), 1)
	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{Search: "0002"}), 1)
	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{Search: "wcs"}), 2)
	assert.Empty(t, svc.FilterReceipts(receipts, ReceiptFilter{Search: "nope"}))
}

func TestFilterReceiptsByTotalAndDate(t *testing.T) {
	svc := newAnalyticsService(newFakeReceiptRepo(), nil)

	receipts := []entity.Receipt{
		receiptAt(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), 100000, 0, 0),
		receiptAt(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), 300000, 0, 0),
	}

	min := int64(200000)
	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{MinTotal: &min}), 1)

	max := int64(200000)
	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{MaxTotal: &max}), 1)

	assert.Len(t, svc.FilterReceipts(receipts, ReceiptFilter{Date: "2025-03-14"}), 1)
	assert.Empty(t, svc.FilterReceipts(receipts, ReceiptFilter{Date: "2025-03-16"}))
}
