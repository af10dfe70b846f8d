package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/waheedcycles/cycleshop-api/internal/config"
	"github.com/waheedcycles/cycleshop-api/internal/domain/entity"
	"github.com/waheedcycles/cycleshop-api/internal/domain/repository"
	"github.com/waheedcycles/cycleshop-api/pkg/billing"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
)

// AnalyticsService aggregates receipts into sales summaries
type AnalyticsService struct {
	receiptRepo   repository.ReceiptRepository
	analyticsRepo repository.AnalyticsRepository
	resolver      *period.Resolver
	now           func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	receiptRepo repository.ReceiptRepository,
	analyticsRepo repository.AnalyticsRepository,
	shop config.ShopConfig,
) *AnalyticsService {
	return &AnalyticsService{
		receiptRepo:   receiptRepo,
		analyticsRepo: analyticsRepo,
		resolver:      period.NewResolver(shop.TimezoneOffsetMinutes),
		now:           time.Now,
	}
}

// Summary holds the headline numbers for a period. Amounts are rupees.
type Summary struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalReceipts     int     `json:"total_receipts"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalDiscount     float64 `json:"total_discount"`
	TotalGST          float64 `json:"total_gst"`
}

// DailyPoint is one day of the revenue chart, keyed by shop-local date
type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// TopItem is one row of the best-sellers table. Revenue is rupees.
type TopItem struct {
	ItemName     string  `json:"item_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DateRange echoes the resolved period back to the client as local dates
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AnalyticsResult is the full analytics payload for a period
type AnalyticsResult struct {
	Summary   Summary          `json:"summary"`
	ChartData []DailyPoint     `json:"chart_data"`
	TopItems  []TopItem        `json:"top_items"`
	Receipts  []entity.Receipt `json:"receipts"`
	Period    period.Kind      `json:"period"`
	DateRange DateRange        `json:"date_range"`
}

const topItemsLimit = 5

// GetAnalytics resolves the named period and aggregates every receipt in it
func (s *AnalyticsService) GetAnalytics(ctx context.Context, kind period.Kind, customStart, customEnd string) (*AnalyticsResult, error) {
	rng := s.resolver.Resolve(kind, s.now(), customStart, customEnd)

	receipts, err := s.receiptRepo.List(ctx, &repository.ReceiptFilterParams{
		StartDate: &rng.Start,
		EndDate:   &rng.End,
	})
	if err != nil {
		return nil, err
	}

	topRows, err := s.analyticsRepo.TopItems(ctx, rng.Start, rng.End, topItemsLimit)
	if err != nil {
		return nil, err
	}
	topItems := make([]TopItem, 0, len(topRows))
	for _, row := range topRows {
		revenue, _ := billing.FromPaise(row.Revenue).Float64()
		topItems = append(topItems, TopItem{
			ItemName:     row.ItemName,
			QuantitySold: row.QuantitySold,
			Revenue:      revenue,
		})
	}

	summary, chart := s.Aggregate(receipts)

	return &AnalyticsResult{
		Summary:   summary,
		ChartData: chart,
		TopItems:  topItems,
		Receipts:  receipts,
		Period:    kind,
		DateRange: DateRange{
			Start: s.resolver.LocalDate(rng.Start),
			// End is exclusive; report the last included local day
			End: s.resolver.LocalDate(rng.End.Add(-time.Second)),
		},
	}, nil
}

// Aggregate computes the summary and daily chart series for a set of
// receipts. Daily buckets use the shop-local calendar date, so the sum of
// the chart always equals the summary totals.
func (s *AnalyticsService) Aggregate(receipts []entity.Receipt) (Summary, []DailyPoint) {
	var revenue, discount, gst int64
	byDate := make(map[string]*DailyPoint)

	for _, r := range receipts {
		revenue += r.GrandTotal
		discount += r.DiscountAmount
		gst += r.GSTAmount

		date := s.resolver.LocalDate(r.CreatedAt)
		point, ok := byDate[date]
		if !ok {
			point = &DailyPoint{Date: date}
			byDate[date] = point
		}
		dayRevenue, _ := billing.FromPaise(r.GrandTotal).Float64()
		point.Revenue += dayRevenue
		point.Count++
	}

	chart := make([]DailyPoint, 0, len(byDate))
	for _, point := range byDate {
		chart = append(chart, *point)
	}
	sort.Slice(chart, func(i, j int) bool { return chart[i].Date < chart[j].Date })

	totalRevenue, _ := billing.FromPaise(revenue).Float64()
	totalDiscount, _ := billing.FromPaise(discount).Float64()
	totalGST, _ := billing.FromPaise(gst).Float64()

	avg := 0.0
	if len(receipts) > 0 {
		avg, _ = billing.FromPaise(revenue / int64(len(receipts))).Float64()
	}

	return Summary{
		TotalRevenue:      totalRevenue,
		TotalReceipts:     len(receipts),
		AverageOrderValue: avg,
		TotalDiscount:     totalDiscount,
		TotalGST:          totalGST,
	}, chart
}

// ReceiptFilter narrows an already-loaded receipt list in memory
type ReceiptFilter struct {
	Search   string
	Date     string // shop-local YYYY-MM-DD
	MinTotal *int64 // In paise
	MaxTotal *int64 // In paise
}

// FilterReceipts applies the filter to a receipt slice without touching the
// database. Search matches receipt number, customer name and phone.
func (s *AnalyticsService) FilterReceipts(receipts []entity.Receipt, f ReceiptFilter) []entity.Receipt {
	out := make([]entity.Receipt, 0, len(receipts))
	search := strings.ToLower(f.Search)

	for _, r := range receipts {
		if search != "" && !matchesSearch(&r, search) {
			continue
		}
		if f.Date != "" && s.resolver.LocalDate(r.CreatedAt) != f.Date {
			continue
		}
		if f.MinTotal != nil && r.GrandTotal < *f.MinTotal {
			continue
		}
		if f.MaxTotal != nil && r.GrandTotal > *f.MaxTotal {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r *entity.Receipt, search string) bool {
	if strings.Contains(strings.ToLower(r.ReceiptNo), search) {
		return true
	}
	if r.CustomerName != nil && strings.Contains(strings.ToLower(*r.CustomerName), search) {
		return true
	}
	if r.CustomerPhone != nil && strings.Contains(strings.ToLower(*r.CustomerPhone), search) {
		return true
	}
	return false
}
