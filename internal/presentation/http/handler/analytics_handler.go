package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/response"
	"github.com/waheedcycles/cycleshop-api/pkg/billing"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
)

// AnalyticsHandler handles sales analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Get returns the aggregated analytics for a period.
// Query params: period=today|week|month|custom, start_date, end_date, plus
// search/date/min_total/max_total which narrow the receipt list without
// changing the summary or chart.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	var query struct {
		Search   string  `form:"search"`
		Date     string  `form:"date"`
		MinTotal float64 `form:"min_total"`
		MaxTotal float64 `form:"max_total"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	kind := period.ParseKind(c.DefaultQuery("period", "today"))

	result, err := h.analyticsService.GetAnalytics(c.Request.Context(), kind,
		c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := service.ReceiptFilter{Search: query.Search, Date: query.Date}
	if query.MinTotal > 0 {
		min := billing.ToPaise(decimal.NewFromFloat(query.MinTotal))
		filter.MinTotal = &min
	}
	if query.MaxTotal > 0 {
		max := billing.ToPaise(decimal.NewFromFloat(query.MaxTotal))
		filter.MaxTotal = &max
	}
	if filter.Search != "" || filter.Date != "" || filter.MinTotal != nil || filter.MaxTotal != nil {
		result.Receipts = h.analyticsService.FilterReceipts(result.Receipts, filter)
	}

	response.OK(c, "Analytics retrieved successfully", result)
}
